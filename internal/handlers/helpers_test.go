package handlers_test

import (
	"encoding/json"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/notely-dev/notely/internal/models"
	"github.com/notely-dev/notely/internal/router"
	"github.com/notely-dev/notely/internal/store"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// In-memory stores backing the handler tests. Save and DeleteByID mirror the
// real store semantics: a zero id gets the next surrogate key, deletes are
// idempotent.

type fakeUserStore struct {
	users  map[uint]models.User
	nextID uint
}

func newFakeUserStore(seed ...models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[uint]models.User)}

	for i := range seed {
		s.Save(&seed[i])
	}

	return s
}

func (f *fakeUserStore) FindAll() ([]models.User, error) {
	users := make([]models.User, 0, len(f.users))

	for _, u := range f.users {
		users = append(users, u)
	}

	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })

	return users, nil
}

func (f *fakeUserStore) FindByID(id uint) (*models.User, error) {
	u, ok := f.users[id]

	if !ok {
		return nil, store.ErrNotFound
	}

	return &u, nil
}

func (f *fakeUserStore) FindByEmailAndPassword(email, password string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email && u.Password == password {
			u := u
			return &u, nil
		}
	}

	return nil, store.ErrNotFound
}

func (f *fakeUserStore) Save(user *models.User) error {
	if user.ID == 0 {
		f.nextID++
		user.ID = f.nextID
	} else if user.ID > f.nextID {
		f.nextID = user.ID
	}

	f.users[user.ID] = *user

	return nil
}

func (f *fakeUserStore) DeleteByID(id uint) error {
	delete(f.users, id)
	return nil
}

type fakeNoteStore struct {
	notes  map[uint]models.Note
	nextID uint
}

func newFakeNoteStore(seed ...models.Note) *fakeNoteStore {
	s := &fakeNoteStore{notes: make(map[uint]models.Note)}

	for i := range seed {
		s.Save(&seed[i])
	}

	return s
}

func (f *fakeNoteStore) all(keep func(models.Note) bool) []models.Note {
	notes := make([]models.Note, 0, len(f.notes))

	for _, n := range f.notes {
		if keep(n) {
			notes = append(notes, n)
		}
	}

	sort.Slice(notes, func(i, j int) bool { return notes[i].ID < notes[j].ID })

	return notes
}

func (f *fakeNoteStore) FindAll() ([]models.Note, error) {
	return f.all(func(models.Note) bool { return true }), nil
}

func (f *fakeNoteStore) FindByID(id uint) (*models.Note, error) {
	n, ok := f.notes[id]

	if !ok {
		return nil, store.ErrNotFound
	}

	return &n, nil
}

func (f *fakeNoteStore) FindByUserEmail(userEmail string) ([]models.Note, error) {
	return f.all(func(n models.Note) bool { return n.UserEmail == userEmail }), nil
}

func (f *fakeNoteStore) FindByUserEmailAndType(userEmail, noteType string) ([]models.Note, error) {
	return f.all(func(n models.Note) bool { return n.UserEmail == userEmail && n.Type == noteType }), nil
}

func (f *fakeNoteStore) FindByType(noteType string) ([]models.Note, error) {
	return f.all(func(n models.Note) bool { return n.Type == noteType }), nil
}

func (f *fakeNoteStore) Save(note *models.Note) error {
	if note.ID == 0 {
		f.nextID++
		note.ID = f.nextID
	} else if note.ID > f.nextID {
		f.nextID = note.ID
	}

	f.notes[note.ID] = *note

	return nil
}

func (f *fakeNoteStore) DeleteByID(id uint) error {
	delete(f.notes, id)
	return nil
}

func newTestRouter(users store.UserStore, notes store.NoteStore) *gin.Engine {
	return router.NewRouter(users, notes)
}

// perform sends a request with a raw JSON body ("" means no body) and returns
// the recorded response.
func perform(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req = httptest.NewRequest(method, path, strings.NewReader(body))

	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	return w
}

func decodeBody[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()

	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v))

	return v
}
