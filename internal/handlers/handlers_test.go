package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"jobcloud/backend/internal/models"
	"jobcloud/backend/internal/services"
)

// --- fakes ---

type fakeUserRepo struct {
	users     []*models.User
	createErr error
	findErr   error
}

func (f *fakeUserRepo) Create(user *models.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *user
	f.users = append(f.users, &stored)
	return nil
}

func (f *fakeUserRepo) FindByEmail(email string) (*models.User, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	for _, u := range f.users {
		if u.Email == email {
			user := *u
			return &user, nil
		}
	}
	return nil, fmt.Errorf("user not found: %w", gorm.ErrRecordNotFound)
}

func (f *fakeUserRepo) FindProfileByEmail(email string) (*models.User, error) {
	user, err := f.FindByEmail(email)
	if err != nil {
		return nil, err
	}
	user.Password = ""
	return user, nil
}

type fakeJobRepo struct {
	jobs      []models.Job
	createErr error
	findErr   error
}

func (f *fakeJobRepo) Create(job *models.Job) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.jobs = append(f.jobs, *job)
	return nil
}

func (f *fakeJobRepo) FindAll() ([]models.Job, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	jobs := make([]models.Job, len(f.jobs))
	copy(jobs, f.jobs)
	sort.SliceStable(jobs, func(i, j int) bool {
		return jobs[i].CreatedAt.After(jobs[j].CreatedAt)
	})
	return jobs, nil
}

type fakeApplicationRepo struct {
	applications []*models.Application
	createErr    error
}

func (f *fakeApplicationRepo) Create(application *models.Application) error {
	if f.createErr != nil {
		return f.createErr
	}
	stored := *application
	f.applications = append(f.applications, &stored)
	return nil
}

// --- helpers ---

func newTestStorage(t *testing.T) services.StorageService {
	t.Helper()
	storage := services.NewStorageService(t.TempDir(), 5<<20)
	require.NoError(t, storage.EnsureUploadDir())
	return storage
}

type testFile struct {
	name        string
	contentType string
	content     []byte
}

func multipartRequest(t *testing.T, target string, fields map[string]string, file *testFile) *http.Request {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="resume"; filename=%q`, file.name))
		h.Set("Content-Type", file.contentType)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, target, &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return req
}

func jsonRequest(t *testing.T, method, target string, payload any) *http.Request {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func getRequest(target string) *http.Request {
	return httptest.NewRequest(http.MethodGet, target, nil)
}

func readBody(t *testing.T, resp *http.Response) string {
	t.Helper()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	resp.Body.Close()
	return string(body)
}

func decodeJSON(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal([]byte(readBody(t, resp)), out))
}
