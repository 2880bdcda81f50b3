package soap

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moha528/quickpress-back/internal/domains/user"
	"github.com/moha528/quickpress-back/pkg/jwt"
)

type stubUserService struct {
	authenticateFn func(ctx context.Context, username, password string) (*user.DTO, string, error)
	listFn         func(ctx context.Context) ([]user.DTO, error)
	createFn       func(ctx context.Context, req user.CreateRequest) (*user.DTO, error)
	updateFn       func(ctx context.Context, id int64, req user.UpdateRequest) (*user.DTO, error)
	deleteFn       func(ctx context.Context, id int64) error
}

func (s *stubUserService) Authenticate(ctx context.Context, username, password string) (*user.DTO, string, error) {
	return s.authenticateFn(ctx, username, password)
}

func (s *stubUserService) Register(ctx context.Context, req user.RegisterRequest) (*user.DTO, string, error) {
	panic("not used over RPC")
}

func (s *stubUserService) GetByID(ctx context.Context, id int64) (*user.DTO, error) {
	panic("not used over RPC")
}

func (s *stubUserService) List(ctx context.Context) ([]user.DTO, error) {
	return s.listFn(ctx)
}

func (s *stubUserService) Create(ctx context.Context, req user.CreateRequest) (*user.DTO, error) {
	return s.createFn(ctx, req)
}

func (s *stubUserService) Update(ctx context.Context, id int64, req user.UpdateRequest) (*user.DTO, error) {
	return s.updateFn(ctx, id, req)
}

func (s *stubUserService) Delete(ctx context.Context, id int64) error {
	return s.deleteFn(ctx, id)
}

func newTestRouter(users user.Service, tokens *jwt.Manager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(users, tokens, "http://localhost:8000/soap")
	router := gin.New()
	router.GET("/soap", h.ServeWSDL)
	router.POST("/soap", h.Dispatch)
	return router
}

func post(router *gin.Engine, envelope string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/soap", strings.NewReader(envelope))
	req.Header.Set("Content-Type", "text/xml")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func wrap(operation string) string {
	return `<soapenv:Envelope xmlns:soapenv="http://schemas.xmlsoap.org/soap/envelope/" xmlns:tns="http://quickpress.com/soap">
  <soapenv:Header/>
  <soapenv:Body>` + operation + `</soapenv:Body>
</soapenv:Envelope>`
}

func TestServeWSDL(t *testing.T) {
	router := newTestRouter(&stubUserService{}, jwt.NewManager("secret", time.Hour))

	req := httptest.NewRequest(http.MethodGet, "/soap", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/xml")
	assert.Contains(t, w.Body.String(), `<definitions name="QuickPressService"`)
	assert.Contains(t, w.Body.String(), `targetNamespace="http://quickpress.com/soap"`)
}

func TestDispatchMalformedEnvelope(t *testing.T) {
	router := newTestRouter(&stubUserService{}, jwt.NewManager("secret", time.Hour))

	w := post(router, `<soapenv:Envelope><broken`)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "<errorResponse>")
	assert.Contains(t, w.Body.String(), "Erreur interne du serveur")
}

func TestDispatchUnknownOperation(t *testing.T) {
	router := newTestRouter(&stubUserService{}, jwt.NewManager("secret", time.Hour))

	w := post(router, wrap(`<tns:formatDisk/>`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "<errorResponse>")
}

func TestAuthenticateUserSuccess(t *testing.T) {
	users := &stubUserService{
		authenticateFn: func(ctx context.Context, username, password string) (*user.DTO, string, error) {
			require.Equal(t, "admin", username)
			require.Equal(t, "secret", password)
			return &user.DTO{ID: 1, Username: "admin", Role: "ADMIN"}, "signed-token", nil
		},
	}
	router := newTestRouter(users, jwt.NewManager("secret", time.Hour))

	w := post(router, wrap(`<tns:authenticateUser><username>admin</username><password>secret</password></tns:authenticateUser>`))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<authenticateUserResponse>")
	assert.Contains(t, body, "<success>true</success>")
	assert.Contains(t, body, "<message>Authentification réussie</message>")
	assert.Contains(t, body, "<role>ADMIN</role>")
	assert.Contains(t, body, "<token>signed-token</token>")
}

func TestAuthenticateUserBadPassword(t *testing.T) {
	users := &stubUserService{
		authenticateFn: func(ctx context.Context, username, password string) (*user.DTO, string, error) {
			return nil, "", user.ErrInvalidCredentials
		},
	}
	router := newTestRouter(users, jwt.NewManager("secret", time.Hour))

	w := post(router, wrap(`<tns:authenticateUser><username>admin</username><password>wrong</password></tns:authenticateUser>`))

	// Business failure still travels as a 200 envelope.
	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<success>false</success>")
	assert.Contains(t, body, "Nom d'utilisateur ou mot de passe incorrect")
	assert.Contains(t, body, "<role></role>")
	assert.Contains(t, body, "<token></token>")
}

func TestAuthenticateUserMissingCredentials(t *testing.T) {
	router := newTestRouter(&stubUserService{}, jwt.NewManager("secret", time.Hour))

	w := post(router, wrap(`<tns:authenticateUser><username>admin</username></tns:authenticateUser>`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Nom d'utilisateur et mot de passe requis")
}

func TestListUsersWithoutToken(t *testing.T) {
	router := newTestRouter(&stubUserService{}, jwt.NewManager("secret", time.Hour))

	w := post(router, wrap(`<tns:listUsers></tns:listUsers>`))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<success>false</success>")
	assert.Contains(t, body, "<message>Token requis</message>")
	assert.Contains(t, body, "<users></users>")
}

func TestListUsersInvalidToken(t *testing.T) {
	router := newTestRouter(&stubUserService{}, jwt.NewManager("secret", time.Hour))

	w := post(router, wrap(`<tns:listUsers><token>garbage</token></tns:listUsers>`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Token invalide ou expiré")
}

func TestListUsersSuccess(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	token, err := tokens.Generate(1, "admin", "ADMIN")
	require.NoError(t, err)

	users := &stubUserService{
		listFn: func(ctx context.Context) ([]user.DTO, error) {
			return []user.DTO{
				{ID: 1, Username: "admin", Role: "ADMIN"},
				{ID: 2, Username: "bob", Role: "VISITOR"},
			}, nil
		},
	}
	router := newTestRouter(users, tokens)

	w := post(router, wrap(`<tns:listUsers><token>`+token+`</token></tns:listUsers>`))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<success>true</success>")
	assert.Contains(t, body, "2 utilisateur(s) trouvé(s)")
	// Users travel as an embedded JSON array.
	assert.Contains(t, body, `&#34;username&#34;:&#34;admin&#34;`)
}

func TestAddUserDefaultsRole(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	token, err := tokens.Generate(1, "admin", "ADMIN")
	require.NoError(t, err)

	var gotRole string
	users := &stubUserService{
		createFn: func(ctx context.Context, req user.CreateRequest) (*user.DTO, error) {
			gotRole = req.Role
			return &user.DTO{ID: 9, Username: req.Username, Role: "VISITOR"}, nil
		},
	}
	router := newTestRouter(users, tokens)

	w := post(router, wrap(`<tns:addUser><token>`+token+`</token><username>dave</username><password>pass123</password></tns:addUser>`))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<success>true</success>")
	assert.Contains(t, body, "Utilisateur créé avec succès")
	assert.Contains(t, body, "<userId>9</userId>")
	// Role defaulting is the service's call, the RPC layer passes it empty.
	assert.Empty(t, gotRole)
}

func TestAddUserDuplicateUsername(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	token, err := tokens.Generate(1, "admin", "ADMIN")
	require.NoError(t, err)

	users := &stubUserService{
		createFn: func(ctx context.Context, req user.CreateRequest) (*user.DTO, error) {
			return nil, user.ErrUsernameTaken
		},
	}
	router := newTestRouter(users, tokens)

	w := post(router, wrap(`<tns:addUser><token>`+token+`</token><username>dave</username><password>pass123</password></tns:addUser>`))

	assert.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.Contains(t, body, "<success>false</success>")
	assert.Contains(t, body, "Ce nom d'utilisateur existe déjà")
	assert.Contains(t, body, "<userId>0</userId>")
}

func TestUpdateUserRequiresID(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	token, err := tokens.Generate(1, "admin", "ADMIN")
	require.NoError(t, err)

	router := newTestRouter(&stubUserService{}, tokens)

	w := post(router, wrap(`<tns:updateUser><token>`+token+`</token><username>x</username></tns:updateUser>`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ID utilisateur requis")
}

func TestUpdateUserNotFound(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	token, err := tokens.Generate(1, "admin", "ADMIN")
	require.NoError(t, err)

	users := &stubUserService{
		updateFn: func(ctx context.Context, id int64, req user.UpdateRequest) (*user.DTO, error) {
			return nil, user.ErrNotFound
		},
	}
	router := newTestRouter(users, tokens)

	w := post(router, wrap(`<tns:updateUser><token>`+token+`</token><userId>99</userId><username>x</username></tns:updateUser>`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Utilisateur non trouvé")
}

func TestDeleteUserSuccess(t *testing.T) {
	tokens := jwt.NewManager("secret", time.Hour)
	token, err := tokens.Generate(1, "admin", "ADMIN")
	require.NoError(t, err)

	var deletedID int64
	users := &stubUserService{
		deleteFn: func(ctx context.Context, id int64) error {
			deletedID = id
			return nil
		},
	}
	router := newTestRouter(users, tokens)

	w := post(router, wrap(`<tns:deleteUser><token>`+token+`</token><userId>3</userId></tns:deleteUser>`))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Utilisateur supprimé avec succès")
	assert.Equal(t, int64(3), deletedID)
}
