package handler

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/amu0701/aman-khelkud-backend-main/internal/domain"
	"github.com/amu0701/aman-khelkud-backend-main/internal/handler/dto"
	hmocks "github.com/amu0701/aman-khelkud-backend-main/internal/handler/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

type testDeps struct {
	users       *hmocks.MockUserSvc
	slots       *hmocks.MockSlotSvc
	communities *hmocks.MockCommunitySvc
	sports      *hmocks.MockSportSvc
	store       *hmocks.MockStorePinger
	router      http.Handler
}

func setupRouter(t *testing.T) testDeps {
	t.Helper()
	d := testDeps{
		users:       hmocks.NewMockUserSvc(t),
		slots:       hmocks.NewMockSlotSvc(t),
		communities: hmocks.NewMockCommunitySvc(t),
		sports:      hmocks.NewMockSportSvc(t),
		store:       hmocks.NewMockStorePinger(t),
	}

	h := NewHandler(d.users, d.slots, d.communities, d.sports, d.store)

	r := ginext.New("test")
	r.POST("/user/register", h.RegisterUser)
	r.POST("/user/login", h.LoginUser)
	r.POST("/user/add", h.AddUser)
	r.GET("/user", h.ListUsers)
	r.POST("/booking", h.BookSlot)
	r.GET("/booking", h.ListBookings)
	r.POST("/community", h.CreateCommunity)
	r.GET("/community", h.ListCommunities)
	r.POST("/sport", h.AddSport)
	r.GET("/sport", h.ListSports)
	r.GET("/health", h.Health)
	d.router = r

	return d
}

func do(r http.Handler, method, path string, body []byte) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, bytes.NewReader(body))
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	r.ServeHTTP(w, req)
	return w
}

// --- Users ---

func TestHandler_RegisterUser_Success(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().
		Register(mock.Anything, domain.RegisterUserInput{FullName: "Ann", PhNum: "5551234"}).
		Return(&domain.User{ID: "u1", FullName: "Ann", PhNum: "5551234", CreatedAt: time.Now()}, nil)

	w := do(d.router, http.MethodPost, "/user/register", []byte(`{"fullName":"Ann","phNum":"5551234"}`))

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.DataResponse[dto.UserResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User registered successfully", resp.Message)
	assert.Equal(t, "5551234", resp.Data.PhNum)
	assert.Equal(t, "u1", resp.Data.ID)
}

func TestHandler_RegisterUser_MissingPhone(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Register(mock.Anything, domain.RegisterUserInput{FullName: "Ann"}).
		Return(nil, domain.ErrPhoneRequired)

	w := do(d.router, http.MethodPost, "/user/register", []byte(`{"fullName":"Ann"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Please enter the valid number"}`, w.Body.String())
}

func TestHandler_RegisterUser_Duplicate(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, domain.ErrUserExists)

	w := do(d.router, http.MethodPost, "/user/register", []byte(`{"fullName":"Ann","phNum":"5551234"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"User already exists"}`, w.Body.String())
}

func TestHandler_RegisterUser_StoreError(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Register(mock.Anything, mock.Anything).
		Return(nil, fmt.Errorf("check user: %w", errors.New("server selection error: context deadline exceeded")))

	w := do(d.router, http.MethodPost, "/user/register", []byte(`{"phNum":"5551234"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Error, "server selection error: context deadline exceeded")
}

func TestHandler_RegisterUser_MalformedBody(t *testing.T) {
	d := setupRouter(t)

	w := do(d.router, http.MethodPost, "/user/register", []byte(`{"phNum":`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_LoginUser_Success(t *testing.T) {
	d := setupRouter(t)

	stored := &domain.User{ID: "u1", FullName: "Ann", PhNum: "5551234", City: "Pune", CreatedAt: time.Now()}
	d.users.EXPECT().Login(mock.Anything, "5551234").Return(stored, nil).Twice()

	first := do(d.router, http.MethodPost, "/user/login", []byte(`{"phNum":"5551234"}`))
	second := do(d.router, http.MethodPost, "/user/login", []byte(`{"phNum":"5551234"}`))

	require.Equal(t, http.StatusOK, first.Code)
	require.Equal(t, http.StatusOK, second.Code)
	assert.JSONEq(t, first.Body.String(), second.Body.String())

	var resp dto.LoginResponse
	require.NoError(t, json.Unmarshal(first.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "u1", resp.User.ID)
	assert.Equal(t, "Pune", resp.User.City)
}

func TestHandler_LoginUser_NotFound(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Login(mock.Anything, "000").
		Return(nil, fmt.Errorf("get user: %w", domain.ErrUserNotFound))

	w := do(d.router, http.MethodPost, "/user/login", []byte(`{"phNum":"000"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Invalid Number"}`, w.Body.String())
}

func TestHandler_AddUser_Success(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Add(mock.Anything, domain.CreateUserInput{
		FullName:       "Ann",
		Email:          "ann@example.com",
		PhNum:          "5551234",
		City:           "Pune",
		MembershipPlan: "gold",
	}).Return(&domain.User{ID: "u1", FullName: "Ann", PhNum: "5551234", MembershipPlan: "gold"}, nil)

	body := []byte(`{"fullName":"Ann","email":"ann@example.com","phNum":"5551234","city":"Pune","membershipPlan":"gold"}`)
	w := do(d.router, http.MethodPost, "/user/add", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DataResponse[dto.UserResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "User added successfully", resp.Message)
	assert.Equal(t, "gold", resp.Data.MembershipPlan)
}

func TestHandler_AddUser_StoreError(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, errors.New("connection refused"))

	w := do(d.router, http.MethodPost, "/user/add", []byte(`{}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"connection refused"}`, w.Body.String())
}

func TestHandler_ListUsers_Success(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().List(mock.Anything).Return([]*domain.User{
		{ID: "u1", PhNum: "1"},
		{ID: "u2", PhNum: "2"},
	}, nil)

	w := do(d.router, http.MethodGet, "/user", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListUsers_Error(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().List(mock.Anything).Return(nil, assert.AnError)

	w := do(d.router, http.MethodGet, "/user", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// --- Bookings ---

func TestHandler_BookSlot_Success(t *testing.T) {
	d := setupRouter(t)

	d.slots.EXPECT().Book(mock.Anything, mock.MatchedBy(func(in domain.BookSlotInput) bool {
		return in.SportName == "Tennis" && in.Date == "2024-01-01" && in.Type == domain.SlotTypePrivate
	})).Return(&domain.BookedSlot{
		ID:        "s1",
		SportName: "Tennis",
		Date:      "2024-01-01",
		Type:      domain.SlotTypePrivate,
	}, nil)

	w := do(d.router, http.MethodPost, "/booking", []byte(`{"sportName":"Tennis","date":"2024-01-01","type":"private"}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DataResponse[dto.BookedSlotResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Slot booked successfully", resp.Message)
	assert.Equal(t, "Tennis", resp.Data.SportName)
	assert.Equal(t, "private", resp.Data.Type)
	assert.NotNil(t, resp.Data.AddFriend)
}

func TestHandler_BookSlot_FriendsPassedThrough(t *testing.T) {
	d := setupRouter(t)

	d.slots.EXPECT().Book(mock.Anything, mock.MatchedBy(func(in domain.BookSlotInput) bool {
		return len(in.AddFriend) == 2 && in.AddFriend[1]["phNum"] == "42" && in.TotalPlayer == 3
	})).Return(&domain.BookedSlot{ID: "s1"}, nil)

	body := []byte(`{"addFriend":[{"name":"Bob"},{"name":"Eve","phNum":"42"}],"totalPlayer":3}`)
	w := do(d.router, http.MethodPost, "/booking", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_BookSlot_InvalidType(t *testing.T) {
	d := setupRouter(t)

	bookErr := fmt.Errorf("%w: type: `public` is not a valid enum value", domain.ErrInvalidSlotType)
	d.slots.EXPECT().Book(mock.Anything, mock.Anything).Return(nil, bookErr)

	w := do(d.router, http.MethodPost, "/booking", []byte(`{"sportName":"Tennis","type":"public"}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp dto.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, bookErr.Error(), resp.Error)
}

func TestHandler_BookSlot_WrongFieldType(t *testing.T) {
	d := setupRouter(t)

	w := do(d.router, http.MethodPost, "/booking", []byte(`{"totalPlayer":"four"}`))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_BookSlot_NumericStrings(t *testing.T) {
	d := setupRouter(t)

	d.slots.EXPECT().Book(mock.Anything, mock.MatchedBy(func(in domain.BookSlotInput) bool {
		return in.TotalPlayer == 4 && in.Amount == 250.5 && in.PhNum == "5551234"
	})).Return(&domain.BookedSlot{ID: "s1", TotalPlayer: 4, Amount: 250.5}, nil)

	body := []byte(`{"totalPlayer":"4","amount":"250.5","phNum":5551234}`)
	w := do(d.router, http.MethodPost, "/booking", body)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_AddPaths_EmptyBody(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Add(mock.Anything, domain.CreateUserInput{}).Return(&domain.User{ID: "u1"}, nil)
	d.slots.EXPECT().Book(mock.Anything, domain.BookSlotInput{}).Return(&domain.BookedSlot{ID: "s1"}, nil)
	d.communities.EXPECT().Create(mock.Anything, domain.CreateCommunityInput{}).Return(&domain.Community{ID: "c1"}, nil)
	d.sports.EXPECT().Add(mock.Anything, domain.CreateSportInput{}).Return(&domain.Sport{ID: "sp1"}, nil)

	for _, path := range []string{"/user/add", "/booking", "/community", "/sport"} {
		w := do(d.router, http.MethodPost, path, nil)
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestHandler_RegisterUser_EmptyBody(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Register(mock.Anything, domain.RegisterUserInput{}).Return(nil, domain.ErrPhoneRequired)

	w := do(d.router, http.MethodPost, "/user/register", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"Please enter the valid number"}`, w.Body.String())
}

func TestHandler_LoginUser_NumericPhone(t *testing.T) {
	d := setupRouter(t)

	d.users.EXPECT().Login(mock.Anything, "5551234").Return(&domain.User{ID: "u1", PhNum: "5551234"}, nil)

	w := do(d.router, http.MethodPost, "/user/login", []byte(`{"phNum":5551234}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CreateCommunity_RequiredPlayerString(t *testing.T) {
	d := setupRouter(t)

	d.communities.EXPECT().Create(mock.Anything, domain.CreateCommunityInput{Sport: "Football", RequiredPlayer: 10}).
		Return(&domain.Community{ID: "c1", Sport: "Football", RequiredPlayer: 10}, nil)

	w := do(d.router, http.MethodPost, "/community", []byte(`{"sport":"Football","requiredPlayer":"10"}`))

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_ListBookings_Empty(t *testing.T) {
	d := setupRouter(t)

	d.slots.EXPECT().List(mock.Anything).Return(nil, nil)

	w := do(d.router, http.MethodGet, "/booking", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
}

// --- Communities ---

func TestHandler_CreateCommunity_Success(t *testing.T) {
	d := setupRouter(t)

	d.communities.EXPECT().Create(mock.Anything, domain.CreateCommunityInput{
		Sport:          "Football",
		Facility:       "Turf A",
		Date:           "2024-02-01",
		Time:           "18:00",
		RequiredPlayer: 10,
		InstantJoin:    true,
	}).Return(&domain.Community{ID: "c1", Sport: "Football", RequiredPlayer: 10, InstantJoin: true}, nil)

	body := []byte(`{"sport":"Football","facility":"Turf A","date":"2024-02-01","time":"18:00","requiredPlayer":10,"instantJoin":true}`)
	w := do(d.router, http.MethodPost, "/community", body)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DataResponse[dto.CommunityResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Community created successfully", resp.Message)
	assert.True(t, resp.Data.InstantJoin)
}

func TestHandler_ListCommunities_Success(t *testing.T) {
	d := setupRouter(t)

	d.communities.EXPECT().List(mock.Anything).Return([]*domain.Community{{ID: "c1"}}, nil)

	w := do(d.router, http.MethodGet, "/community", nil)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.CommunityResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_CreateCommunity_StoreError(t *testing.T) {
	d := setupRouter(t)

	d.communities.EXPECT().Create(mock.Anything, mock.Anything).Return(nil, errors.New("write concern error"))

	w := do(d.router, http.MethodPost, "/community", []byte(`{}`))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"write concern error"}`, w.Body.String())
}

// --- Sports ---

func TestHandler_AddSport_Success(t *testing.T) {
	d := setupRouter(t)

	d.sports.EXPECT().Add(mock.Anything, domain.CreateSportInput{
		SportName:    "Badminton",
		CategoryType: "indoor",
		Status:       "active",
	}).Return(&domain.Sport{ID: "sp1", SportName: "Badminton", CategoryType: "indoor", Status: "active"}, nil)

	w := do(d.router, http.MethodPost, "/sport", []byte(`{"sportName":"Badminton","categoryType":"indoor","status":"active"}`))

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.DataResponse[dto.SportResponse]
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Sport added successfully", resp.Message)
	assert.Equal(t, "sp1", resp.Data.ID)
}

func TestHandler_ListSports_Error(t *testing.T) {
	d := setupRouter(t)

	d.sports.EXPECT().List(mock.Anything).Return(nil, errors.New("boom"))

	w := do(d.router, http.MethodGet, "/sport", nil)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"boom"}`, w.Body.String())
}

// --- Health ---

func TestHandler_Health_OK(t *testing.T) {
	d := setupRouter(t)

	d.store.EXPECT().Ping(mock.Anything).Return(nil)

	w := do(d.router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestHandler_Health_StoreDown(t *testing.T) {
	d := setupRouter(t)

	d.store.EXPECT().Ping(mock.Anything).Return(errors.New("no reachable servers"))

	w := do(d.router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)

	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "unavailable", resp.Status)
	assert.Equal(t, "no reachable servers", resp.Error)
}
