package soap

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/moha528/quickpress-back/internal/domains/user"
	"github.com/moha528/quickpress-back/pkg/jwt"
	"github.com/moha528/quickpress-back/pkg/logger"
)

const contentTypeXML = "text/xml; charset=utf-8"

// The RPC surface predates the REST one and its payload messages are
// contractual, hence the French.
const (
	msgCredentialsRequired = "Nom d'utilisateur et mot de passe requis"
	msgBadCredentials      = "Nom d'utilisateur ou mot de passe incorrect"
	msgAuthenticated       = "Authentification réussie"
	msgTokenRequired       = "Token requis"
	msgTokenInvalid        = "Token invalide ou expiré"
	msgUsernameTaken       = "Ce nom d'utilisateur existe déjà"
	msgUserCreated         = "Utilisateur créé avec succès"
	msgUserIDRequired      = "ID utilisateur requis"
	msgUserNotFound        = "Utilisateur non trouvé"
	msgUserUpdated         = "Utilisateur mis à jour avec succès"
	msgUserDeleted         = "Utilisateur supprimé avec succès"
	msgInvalidUserData     = "Données utilisateur invalides"
	msgInvalidRole         = "Rôle invalide"
	msgInternalError       = "Erreur interne du serveur"
)

// Handler serves the legacy RPC endpoint: the WSDL on GET and envelope
// dispatch on POST. It drives the same user service as the REST layer.
type Handler struct {
	users  user.Service
	tokens *jwt.Manager
	wsdl   string
}

func NewHandler(users user.Service, tokens *jwt.Manager, address string) *Handler {
	return &Handler{
		users:  users,
		tokens: tokens,
		wsdl:   wsdlDocument(address),
	}
}

// ServeWSDL handles GET /soap.
func (h *Handler) ServeWSDL(c *gin.Context) {
	c.Data(http.StatusOK, "application/xml", []byte(h.wsdl))
}

// Dispatch handles POST /soap. Business failures are rendered as HTTP 200
// envelopes carrying success=false; only malformed, unwrapped or
// unrecognized envelopes get a transport-level 500.
func (h *Handler) Dispatch(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		h.transportError(c, ErrMalformedEnvelope)
		return
	}

	body, err := parseEnvelope(raw)
	if err != nil {
		h.transportError(c, err)
		return
	}

	req, err := decodeRequest(body)
	if err != nil {
		h.transportError(c, err)
		return
	}

	ctx := c.Request.Context()
	var result Result
	switch r := req.(type) {
	case AuthenticateUserRequest:
		result = h.authenticateUser(ctx, r)
	case ListUsersRequest:
		result = h.listUsers(ctx, r)
	case AddUserRequest:
		result = h.addUser(ctx, r)
	case UpdateUserRequest:
		result = h.updateUser(ctx, r)
	case DeleteUserRequest:
		result = h.deleteUser(ctx, r)
	}

	c.Data(http.StatusOK, contentTypeXML, renderEnvelope(string(req.Op()), result))
}

func (h *Handler) transportError(c *gin.Context, err error) {
	result := Result{
		Success: boolField(false),
		Message: strField(msgInternalError + ": " + err.Error()),
	}
	c.Data(http.StatusInternalServerError, contentTypeXML, renderEnvelope("error", result))
}

// requireToken verifies the token argument of an authenticated operation.
// The REST layer rejects bad credentials at transport level with 401/403;
// here a verification failure is reported inside a normal response payload
// instead. This function is the single place that asymmetry lives.
func (h *Handler) requireToken(token string) (string, bool) {
	if token == "" {
		return msgTokenRequired, false
	}
	if _, err := h.tokens.Verify(token); err != nil {
		return msgTokenInvalid, false
	}
	return "", true
}

func (h *Handler) authenticateUser(ctx context.Context, r AuthenticateUserRequest) Result {
	if r.Username == "" || r.Password == "" {
		return authFailure(msgCredentialsRequired)
	}

	dto, token, err := h.users.Authenticate(ctx, r.Username, r.Password)
	if err != nil {
		var vErrs validation.Errors
		if errors.Is(err, user.ErrInvalidCredentials) || errors.As(err, &vErrs) {
			return authFailure(msgBadCredentials)
		}
		logger.Error("soap authenticateUser", err)
		return authFailure(msgInternalError)
	}

	return Result{
		Success: boolField(true),
		Message: strField(msgAuthenticated),
		Role:    strField(dto.Role),
		Token:   strField(token),
	}
}

// authFailure keeps role and token present but empty, as callers of the
// legacy binding expect.
func authFailure(message string) Result {
	return Result{
		Success: boolField(false),
		Message: strField(message),
		Role:    strField(""),
		Token:   strField(""),
	}
}

// soapUser is the JSON shape embedded in the listUsers reply.
type soapUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (h *Handler) listUsers(ctx context.Context, r ListUsersRequest) Result {
	if msg, ok := h.requireToken(r.Token); !ok {
		return Result{Success: boolField(false), Message: strField(msg), Users: strField("")}
	}

	dtos, err := h.users.List(ctx)
	if err != nil {
		logger.Error("soap listUsers", err)
		return Result{Success: boolField(false), Message: strField(msgInternalError), Users: strField("")}
	}

	users := make([]soapUser, 0, len(dtos))
	for _, dto := range dtos {
		users = append(users, soapUser{
			ID:        dto.ID,
			Username:  dto.Username,
			Role:      dto.Role,
			CreatedAt: dto.CreatedAt,
		})
	}

	encoded, err := json.Marshal(users)
	if err != nil {
		logger.Error("soap listUsers", err)
		return Result{Success: boolField(false), Message: strField(msgInternalError), Users: strField("")}
	}

	return Result{
		Success: boolField(true),
		Message: strField(fmt.Sprintf("%d utilisateur(s) trouvé(s)", len(users))),
		Users:   strField(string(encoded)),
	}
}

func (h *Handler) addUser(ctx context.Context, r AddUserRequest) Result {
	if msg, ok := h.requireToken(r.Token); !ok {
		return Result{Success: boolField(false), Message: strField(msg), UserID: intField(0)}
	}

	if r.Username == "" || r.Password == "" {
		return Result{Success: boolField(false), Message: strField(msgCredentialsRequired), UserID: intField(0)}
	}

	dto, err := h.users.Create(ctx, user.CreateRequest{
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
	})
	if err != nil {
		return Result{Success: boolField(false), Message: strField(h.createErrorMessage(err)), UserID: intField(0)}
	}

	return Result{
		Success: boolField(true),
		Message: strField(msgUserCreated),
		UserID:  intField(dto.ID),
	}
}

func (h *Handler) updateUser(ctx context.Context, r UpdateUserRequest) Result {
	if msg, ok := h.requireToken(r.Token); !ok {
		return failure(msg)
	}
	if r.UserID == 0 {
		return failure(msgUserIDRequired)
	}

	_, err := h.users.Update(ctx, r.UserID, user.UpdateRequest{
		Username: r.Username,
		Password: r.Password,
		Role:     r.Role,
	})
	if err != nil {
		return failure(h.updateErrorMessage(err))
	}

	return success(msgUserUpdated)
}

func (h *Handler) deleteUser(ctx context.Context, r DeleteUserRequest) Result {
	if msg, ok := h.requireToken(r.Token); !ok {
		return failure(msg)
	}
	if r.UserID == 0 {
		return failure(msgUserIDRequired)
	}

	if err := h.users.Delete(ctx, r.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return failure(msgUserNotFound)
		}
		logger.Error("soap deleteUser", err)
		return failure(msgInternalError)
	}

	return success(msgUserDeleted)
}

func (h *Handler) createErrorMessage(err error) string {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, user.ErrUsernameTaken):
		return msgUsernameTaken
	case errors.Is(err, user.ErrInvalidRole):
		return msgInvalidRole
	case errors.As(err, &vErrs):
		return msgInvalidUserData
	default:
		logger.Error("soap addUser", err)
		return msgInternalError
	}
}

func (h *Handler) updateErrorMessage(err error) string {
	var vErrs validation.Errors
	switch {
	case errors.Is(err, user.ErrNotFound):
		return msgUserNotFound
	case errors.Is(err, user.ErrUsernameTaken):
		return msgUsernameTaken
	case errors.Is(err, user.ErrInvalidRole):
		return msgInvalidRole
	case errors.As(err, &vErrs):
		return msgInvalidUserData
	default:
		logger.Error("soap updateUser", err)
		return msgInternalError
	}
}

func success(message string) Result {
	return Result{Success: boolField(true), Message: strField(message)}
}

func failure(message string) Result {
	return Result{Success: boolField(false), Message: strField(message)}
}
