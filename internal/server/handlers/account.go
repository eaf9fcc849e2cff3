package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"calcapi/internal/auth"
	"calcapi/internal/models"
	"calcapi/internal/server/storage"
	"calcapi/internal/validation"
	"calcapi/pkg/api"
)

// Единый текст отказа в аутентификации: неизвестный пользователь и
// неверный пароль неразличимы для клиента
const authFailedMessage = "invalid username or password"

// AccountHandler обрабатывает запросы регистрации и входа
type AccountHandler struct {
	logger *slog.Logger
	users  storage.UserStorage
}

// NewAccountHandler создает новый handler для учетных записей
func NewAccountHandler(logger *slog.Logger, users storage.UserStorage) *AccountHandler {
	return &AccountHandler{
		logger: logger,
		users:  users,
	}
}

// Register обрабатывает POST /api/register
// Регистрация нового пользователя
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest, CodeValidation)
		return
	}

	if err := validation.ValidateRegistration(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid registration", slog.String("username", req.Username), slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest, CodeValidation)
		return
	}

	passwordHash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(h.logger, w, "internal server error", http.StatusInternalServerError, CodeInternal)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: passwordHash,
		Email:        req.Email,
		CreatedAt:    time.Now().UTC(),
	}

	// Уникальность username гарантирует хранилище, а не проверка перед
	// вставкой: параллельные регистрации одного имени не создадут дубликат
	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("username", req.Username))
			sendError(h.logger, w, "user already exists", http.StatusConflict, CodeUserExists)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(h.logger, w, "failed to register user", http.StatusInternalServerError, CodeStorage)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	resp := api.RegisterResponse{
		Message:   "user registered successfully",
		UserID:    user.ID,
		Username:  user.Username,
		CreatedAt: formatTime(user.CreatedAt),
		Status:    "success",
	}

	sendJSON(h.logger, w, resp, http.StatusCreated)
}

// Login обрабатывает POST /api/login
// Проверка учетных данных пользователя
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.WarnContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(h.logger, w, "invalid request body", http.StatusBadRequest, CodeValidation)
		return
	}

	if err := validation.ValidateLogin(&req); err != nil {
		h.logger.WarnContext(ctx, "invalid login request", slog.Any("error", err))
		sendError(h.logger, w, err.Error(), http.StatusBadRequest, CodeValidation)
		return
	}

	user, err := h.users.GetUserByUsername(ctx, req.Username)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			// Фиктивная bcrypt проверка выравнивает время ответа с путем
			// "неверный пароль"
			auth.VerifyDummy(req.Password)
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("username", req.Username))
			sendError(h.logger, w, authFailedMessage, http.StatusUnauthorized, CodeAuthFailed)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(h.logger, w, "authentication service error", http.StatusInternalServerError, CodeStorage)
		return
	}

	if !auth.VerifyPassword(req.Password, user.PasswordHash) {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("username", req.Username))
		sendError(h.logger, w, authFailedMessage, http.StatusUnauthorized, CodeAuthFailed)
		return
	}

	now := time.Now().UTC()
	if err := h.users.UpdateLastLogin(ctx, user.ID, now); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("username", user.Username),
		slog.String("user_id", user.ID))

	resp := api.LoginResponse{
		Message:   "authentication successful",
		UserID:    user.ID,
		Username:  user.Username,
		LastLogin: formatTime(now),
		Status:    "authenticated",
	}

	sendJSON(h.logger, w, resp, http.StatusOK)
}
