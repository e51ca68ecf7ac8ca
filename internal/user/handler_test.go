package user_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/frahmantamala/user-management/internal"
	"github.com/frahmantamala/user-management/internal/user"
)

// stubService returns canned results per operation.
type stubService struct {
	findAllUsers []*user.User
	findAllErr   error
	loginResult  *user.LoginResult
	loginErr     error
	createUser   *user.User
	createErr    error
	tokenUser    *user.User
	tokenErr     error
}

func (s *stubService) FindAll(context.Context, int, int) ([]*user.User, error) {
	return s.findAllUsers, s.findAllErr
}
func (s *stubService) FindByID(context.Context, string) (*user.User, error) {
	return nil, internal.ErrUserNotFound
}
func (s *stubService) Create(context.Context, user.CreateUserDTO) (*user.User, error) {
	return s.createUser, s.createErr
}
func (s *stubService) Update(context.Context, string, user.UpdateUserDTO) (bool, error) {
	return false, internal.ErrUserNotFound
}
func (s *stubService) Delete(context.Context, string) (bool, error) {
	return false, internal.ErrUserNotFound
}
func (s *stubService) DeleteAll(context.Context) (bool, error) {
	return true, nil
}
func (s *stubService) Login(context.Context, user.LoginDTO) (*user.LoginResult, error) {
	return s.loginResult, s.loginErr
}
func (s *stubService) FindOneByToken(context.Context, string) (*user.User, error) {
	return s.tokenUser, s.tokenErr
}
func (s *stubService) LockAndUnlockUser(context.Context, string) (bool, error) {
	return false, internal.ErrUserNotFound
}

var _ = Describe("User Handler", func() {
	var (
		stub    *stubService
		handler *user.Handler
	)

	BeforeEach(func() {
		stub = &stubService{}
		handler = user.NewHandler(stub)
	})

	Describe("FindAll", func() {
		It("should answer 204 with no body when the listing is empty", func() {
			stub.findAllErr = internal.ErrNoUsers

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users", nil)
			rec := httptest.NewRecorder()
			handler.FindAll(rec, req)

			Expect(rec.Code).To(Equal(http.StatusNoContent))
			Expect(rec.Body.Len()).To(BeZero())
		})

		It("should answer 200 with the user list", func() {
			stub.findAllUsers = []*user.User{{ID: "u1", Username: "alice"}}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users?offset=0&limit=10", nil)
			rec := httptest.NewRecorder()
			handler.FindAll(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))

			var users []user.User
			Expect(json.Unmarshal(rec.Body.Bytes(), &users)).To(Succeed())
			Expect(users).To(HaveLen(1))
			Expect(users[0].Username).To(Equal("alice"))
		})
	})

	Describe("Create", func() {
		It("should answer 409 with the conflict payload on duplicate username", func() {
			stub.createErr = internal.ErrUsernameConflict

			body := strings.NewReader(`{"username":"alice","password":"pw"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
			rec := httptest.NewRecorder()
			handler.Create(rec, req)

			Expect(rec.Code).To(Equal(http.StatusConflict))

			var resp internal.Response
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Error.Code).To(Equal(internal.ErrCodeConflict))
			Expect(resp.Error.Message).To(Equal("Conflict: Username"))
		})

		It("should answer 400 on a malformed body", func() {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/users", strings.NewReader("{"))
			rec := httptest.NewRecorder()
			handler.Create(rec, req)

			Expect(rec.Code).To(Equal(http.StatusBadRequest))
		})

		It("should answer 201 with the created user", func() {
			stub.createUser = &user.User{ID: "u1", Username: "alice"}

			body := strings.NewReader(`{"username":"alice","password":"pw"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/users", body)
			rec := httptest.NewRecorder()
			handler.Create(rec, req)

			Expect(rec.Code).To(Equal(http.StatusCreated))
		})
	})

	Describe("Login", func() {
		It("should answer 401 with the unauthorized payload", func() {
			stub.loginErr = internal.ErrUnauthorized

			body := strings.NewReader(`{"username":"alice","password":"wrong"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))

			var resp internal.Response
			Expect(json.Unmarshal(rec.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp.Error.Code).To(Equal(internal.ErrCodeUnauthorized))
		})

		It("should answer 200 with token and sites", func() {
			stub.loginResult = &user.LoginResult{Token: "signed-token"}

			body := strings.NewReader(`{"username":"alice","password":"pw"}`)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", body)
			rec := httptest.NewRecorder()
			handler.Login(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("signed-token"))
		})
	})

	Describe("GetCurrentUser", func() {
		It("should answer 401 without a bearer token", func() {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
			rec := httptest.NewRecorder()
			handler.GetCurrentUser(rec, req)

			Expect(rec.Code).To(Equal(http.StatusUnauthorized))
		})

		It("should answer 498 on an invalid token", func() {
			stub.tokenErr = internal.ErrInvalidToken

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
			req.Header.Set("Authorization", "Bearer bad-token")
			rec := httptest.NewRecorder()
			handler.GetCurrentUser(rec, req)

			Expect(rec.Code).To(Equal(internal.StatusInvalidToken))
		})

		It("should answer 200 with the resolved user", func() {
			stub.tokenUser = &user.User{ID: "u1", Username: "alice"}

			req := httptest.NewRequest(http.MethodGet, "/api/v1/users/me", nil)
			req.Header.Set("Authorization", "Bearer good-token")
			rec := httptest.NewRecorder()
			handler.GetCurrentUser(rec, req)

			Expect(rec.Code).To(Equal(http.StatusOK))
			Expect(rec.Body.String()).To(ContainSubstring("alice"))
		})
	})
})
