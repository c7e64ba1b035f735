package handler

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
	"github.com/amu0701/aman-khelkud-backend-main/internal/handler/dto"
	"github.com/wb-go/wbf/ginext"
)

const (
	msgUserRegistered   = "User registered successfully"
	msgLoginSuccessful  = "Login successful"
	msgUserAdded        = "User added successfully"
	msgSlotBooked       = "Slot booked successfully"
	msgCommunityCreated = "Community created successfully"
	msgSportAdded       = "Sport added successfully"

	msgInvalidPhone  = "Please enter the valid number"
	msgUserExists    = "User already exists"
	msgUnknownNumber = "Invalid Number"
)

type UserSvc interface {
	Register(ctx context.Context, input domain.RegisterUserInput) (*domain.User, error)
	Login(ctx context.Context, phNum string) (*domain.User, error)
	Add(ctx context.Context, input domain.CreateUserInput) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

type SlotSvc interface {
	Book(ctx context.Context, input domain.BookSlotInput) (*domain.BookedSlot, error)
	List(ctx context.Context) ([]*domain.BookedSlot, error)
}

type CommunitySvc interface {
	Create(ctx context.Context, input domain.CreateCommunityInput) (*domain.Community, error)
	List(ctx context.Context) ([]*domain.Community, error)
}

type SportSvc interface {
	Add(ctx context.Context, input domain.CreateSportInput) (*domain.Sport, error)
	List(ctx context.Context) ([]*domain.Sport, error)
}

type StorePinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	userService      UserSvc
	slotService      SlotSvc
	communityService CommunitySvc
	sportService     SportSvc
	store            StorePinger
}

func NewHandler(
	userService UserSvc,
	slotService SlotSvc,
	communityService CommunitySvc,
	sportService SportSvc,
	store StorePinger,
) *Handler {
	return &Handler{
		userService:      userService,
		slotService:      slotService,
		communityService: communityService,
		sportService:     sportService,
		store:            store,
	}
}

// Users

func (h *Handler) RegisterUser(c *ginext.Context) {
	var req dto.RegisterUserRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Register(c.Request.Context(), domain.RegisterUserInput{
		FullName: req.FullName,
		PhNum:    string(req.PhNum),
	})
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.DataResponse[dto.UserResponse]{
		Message: msgUserRegistered,
		Data:    dto.ToUserResponse(user),
	})
}

func (h *Handler) LoginUser(c *ginext.Context) {
	var req dto.LoginRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Login(c.Request.Context(), string(req.PhNum))
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Message: msgLoginSuccessful,
		User:    dto.ToUserResponse(user),
	})
}

func (h *Handler) AddUser(c *ginext.Context) {
	var req dto.AddUserRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	user, err := h.userService.Add(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse[dto.UserResponse]{
		Message: msgUserAdded,
		Data:    dto.ToUserResponse(user),
	})
}

func (h *Handler) ListUsers(c *ginext.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToList(users, dto.ToUserResponse))
}

// Bookings

func (h *Handler) BookSlot(c *ginext.Context) {
	var req dto.BookSlotRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	slot, err := h.slotService.Book(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse[dto.BookedSlotResponse]{
		Message: msgSlotBooked,
		Data:    dto.ToBookedSlotResponse(slot),
	})
}

func (h *Handler) ListBookings(c *ginext.Context) {
	slots, err := h.slotService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToList(slots, dto.ToBookedSlotResponse))
}

// Communities

func (h *Handler) CreateCommunity(c *ginext.Context) {
	var req dto.CreateCommunityRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	community, err := h.communityService.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse[dto.CommunityResponse]{
		Message: msgCommunityCreated,
		Data:    dto.ToCommunityResponse(community),
	})
}

func (h *Handler) ListCommunities(c *ginext.Context) {
	communities, err := h.communityService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToList(communities, dto.ToCommunityResponse))
}

// Sports

func (h *Handler) AddSport(c *ginext.Context) {
	var req dto.AddSportRequest
	if err := bindJSON(c, &req); err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return
	}

	sport, err := h.sportService.Add(c.Request.Context(), req.ToInput())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.DataResponse[dto.SportResponse]{
		Message: msgSportAdded,
		Data:    dto.ToSportResponse(sport),
	})
}

func (h *Handler) ListSports(c *ginext.Context) {
	sports, err := h.sportService.List(c.Request.Context())
	if err != nil {
		h.handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToList(sports, dto.ToSportResponse))
}

func (h *Handler) Health(c *ginext.Context) {
	if err := h.store.Ping(c.Request.Context()); err != nil {
		c.JSON(http.StatusServiceUnavailable, dto.HealthResponse{Status: "unavailable", Error: err.Error()})
		return
	}

	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// bindJSON decodes the request body into obj. An empty body binds as {}.
func bindJSON(c *ginext.Context, obj any) error {
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// handleError maps domain errors to 400 and everything else to 500.
// Store errors are passed to the client as is.
func (h *Handler) handleError(c *ginext.Context, err error) {
	c.Set("error", err.Error())

	switch {
	case errors.Is(err, domain.ErrPhoneRequired):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgInvalidPhone})

	case errors.Is(err, domain.ErrUserExists):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgUserExists})

	case errors.Is(err, domain.ErrUserNotFound):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: msgUnknownNumber})

	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, dto.MessageResponse{Message: err.Error()})

	default:
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: err.Error()})
	}
}
