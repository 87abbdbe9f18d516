package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/crately/crately-core/internal/core/domain"
	"github.com/crately/crately-core/internal/core/ports/driving"
)

// ErrorResponse represents an API error response
// @Description API error response
type ErrorResponse struct {
	Error string `json:"error" example:"invalid request body"`
}

// StatusResponse represents a simple status response
// @Description Simple status response
type StatusResponse struct {
	Status string `json:"status" example:"ok"`
}

// VersionResponse represents the API version response
// @Description API version response
type VersionResponse struct {
	Version string `json:"version" example:"1.0.0"`
}

// Health endpoints

// handleHealth godoc
// @Summary      Health check
// @Description  Returns the health status of the API
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Router       /health [get]
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleReady godoc
// @Summary      Readiness check
// @Description  Returns the readiness status of the API (checks database and cache connections)
// @Tags         Health
// @Produce      json
// @Success      200  {object}  StatusResponse
// @Failure      503  {object}  ErrorResponse  "Dependency unavailable"
// @Router       /ready [get]
func (s *Server) handleReady(w http.ResponseWriter, r *http.Request) {
	if s.db != nil {
		if err := s.db.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "database unavailable")
			return
		}
	}
	if s.redisClient != nil {
		if err := s.redisClient.Ping(r.Context()); err != nil {
			writeError(w, http.StatusServiceUnavailable, "cache unavailable")
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
}

// handleVersion godoc
// @Summary      Get API version
// @Description  Returns the current API version
// @Tags         Health
// @Produce      json
// @Success      200  {object}  VersionResponse
// @Router       /version [get]
func (s *Server) handleVersion(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"version": s.version})
}

// Auth endpoints

// handleLogin godoc
// @Summary      User login
// @Description  Authenticate with email and password to receive a JWT token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.LoginRequest  true  "Login credentials"
// @Success      200      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Invalid credentials or account disabled"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /auth/login [post]
func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req domain.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.Authenticate(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidCredentials:
			writeError(w, http.StatusUnauthorized, "invalid credentials")
		case domain.ErrUnauthorized:
			writeError(w, http.StatusUnauthorized, "account disabled")
		default:
			writeError(w, http.StatusInternalServerError, "authentication failed")
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleRefresh godoc
// @Summary      Refresh token
// @Description  Exchange a refresh token for a new JWT token
// @Tags         Authentication
// @Accept       json
// @Produce      json
// @Param        request  body      domain.RefreshRequest  true  "Refresh token"
// @Success      200      {object}  domain.LoginResponse
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      401      {object}  ErrorResponse  "Invalid refresh token"
// @Router       /auth/refresh [post]
func (s *Server) handleRefresh(w http.ResponseWriter, r *http.Request) {
	var req domain.RefreshRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.authService.RefreshToken(r.Context(), req)
	if err != nil {
		writeError(w, http.StatusUnauthorized, "invalid refresh token")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleLogout godoc
// @Summary      Logout user
// @Description  Invalidate the current session token
// @Tags         Authentication
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  StatusResponse
// @Router       /auth/logout [post]
func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	token := extractBearerToken(r)
	if token == "" {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		return
	}

	_ = s.authService.Logout(r.Context(), token)
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Setup endpoint (no auth required, one-time use)

// handleSetup godoc
// @Summary      Initial setup
// @Description  Create the initial admin user. This endpoint can only be called once when no users exist.
// @Tags         Setup
// @Accept       json
// @Produce      json
// @Param        request  body      driving.SetupRequest  true  "Admin user details"
// @Success      201      {object}  driving.SetupResponse
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      403      {object}  ErrorResponse  "Setup already complete"
// @Failure      500      {object}  ErrorResponse  "Setup failed"
// @Router       /setup [post]
func (s *Server) handleSetup(w http.ResponseWriter, r *http.Request) {
	var req driving.SetupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resp, err := s.userService.Setup(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "email, password, and name are required")
		case domain.ErrForbidden:
			writeError(w, http.StatusForbidden, "setup already complete")
		default:
			writeError(w, http.StatusInternalServerError, "setup failed")
		}
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// User endpoints

// handleGetMe godoc
// @Summary      Get current user
// @Description  Get the currently authenticated user's profile
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  domain.UserSummary
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      404  {object}  ErrorResponse  "User not found"
// @Router       /me [get]
func (s *Server) handleGetMe(w http.ResponseWriter, r *http.Request) {
	authCtx := GetAuthContext(r.Context())
	if authCtx == nil {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := s.userService.Get(r.Context(), authCtx.UserID)
	if err != nil {
		writeError(w, http.StatusNotFound, "user not found")
		return
	}

	writeJSON(w, http.StatusOK, user.ToSummary())
}

// handleListUsers godoc
// @Summary      List all users
// @Description  Get a list of all users (admin only)
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.UserSummary
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      403  {object}  ErrorResponse  "Forbidden - admin only"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /users [get]
func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.userService.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list users")
		return
	}

	summaries := make([]*domain.UserSummary, len(users))
	for i, u := range users {
		summaries[i] = u.ToSummary()
	}

	writeJSON(w, http.StatusOK, summaries)
}

// handleCreateUser godoc
// @Summary      Create user
// @Description  Create a new user (admin only)
// @Tags         Users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.CreateUserRequest  true  "User details"
// @Success      201      {object}  domain.UserSummary
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      403      {object}  ErrorResponse  "Forbidden - admin only"
// @Failure      409      {object}  ErrorResponse  "User already exists"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /users [post]
func (s *Server) handleCreateUser(w http.ResponseWriter, r *http.Request) {
	var req driving.CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	user, err := s.userService.Create(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrAlreadyExists:
			writeError(w, http.StatusConflict, "user already exists")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "invalid input")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create user")
		}
		return
	}

	writeJSON(w, http.StatusCreated, user.ToSummary())
}

// handleDeleteUser godoc
// @Summary      Delete user
// @Description  Delete a user by ID (admin only)
// @Tags         Users
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "User ID"
// @Success      200  {object}  StatusResponse
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      403  {object}  ErrorResponse  "Forbidden - admin only"
// @Failure      404  {object}  ErrorResponse  "User not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /users/{id} [delete]
func (s *Server) handleDeleteUser(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := s.userService.Delete(r.Context(), id); err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "user not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete user")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Box endpoints

// handleListBoxes godoc
// @Summary      List boxes
// @Description  List boxes with optional substring filters and sorting, enriched with item counts
// @Tags         Boxes
// @Produce      json
// @Param        search    query     string  false  "Substring filter on name, location, description"
// @Param        location  query     string  false  "Substring filter on location"
// @Param        sort_by   query     string  false  "Sort field: name, location, created_at"
// @Param        order     query     string  false  "Sort order: asc, desc"
// @Success      200       {array}   domain.Box
// @Failure      500       {object}  ErrorResponse  "Internal server error"
// @Router       /boxes [get]
func (s *Server) handleListBoxes(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.BoxFilter{
		Search:   q.Get("search"),
		Location: q.Get("location"),
		SortBy:   q.Get("sort_by"),
		Order:    domain.SortOrder(q.Get("order")),
	}

	boxes, err := s.boxService.List(r.Context(), filter)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to list boxes")
		return
	}

	if boxes == nil {
		boxes = []*domain.Box{}
	}
	writeJSON(w, http.StatusOK, boxes)
}

// handleCreateBox godoc
// @Summary      Create box
// @Description  Create a new storage box
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.CreateBoxRequest  true  "Box details"
// @Success      201      {object}  domain.Box
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /boxes [post]
func (s *Server) handleCreateBox(w http.ResponseWriter, r *http.Request) {
	var req driving.CreateBoxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	box, err := s.boxService.Create(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "box name is required")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create box")
		}
		return
	}

	writeJSON(w, http.StatusCreated, box)
}

// handleGetBox godoc
// @Summary      Get box
// @Description  Get a box by ID with its item count
// @Tags         Boxes
// @Produce      json
// @Param        id   path      string  true  "Box ID"
// @Success      200  {object}  domain.Box
// @Failure      404  {object}  ErrorResponse  "Box not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /boxes/{id} [get]
func (s *Server) handleGetBox(w http.ResponseWriter, r *http.Request) {
	box, err := s.boxService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "box not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to get box")
		}
		return
	}

	writeJSON(w, http.StatusOK, box)
}

// handleUpdateBox godoc
// @Summary      Update box
// @Description  Apply a partial update to a box; omitted fields are untouched
// @Tags         Boxes
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                    true  "Box ID"
// @Param        request  body      driving.UpdateBoxRequest  true  "Fields to update"
// @Success      200      {object}  domain.Box
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      404      {object}  ErrorResponse  "Box not found"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /boxes/{id} [put]
func (s *Server) handleUpdateBox(w http.ResponseWriter, r *http.Request) {
	var req driving.UpdateBoxRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	box, err := s.boxService.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "box not found")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "invalid input")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update box")
		}
		return
	}

	writeJSON(w, http.StatusOK, box)
}

// handleDeleteBox godoc
// @Summary      Delete box
// @Description  Delete a box and every item inside it (admin only)
// @Tags         Boxes
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Box ID"
// @Success      200  {object}  StatusResponse
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      403  {object}  ErrorResponse  "Forbidden - admin only"
// @Failure      404  {object}  ErrorResponse  "Box not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /boxes/{id} [delete]
func (s *Server) handleDeleteBox(w http.ResponseWriter, r *http.Request) {
	if err := s.boxService.Delete(r.Context(), r.PathValue("id")); err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "box not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete box")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// handleGetBoxLabel godoc
// @Summary      Get box label
// @Description  Render the printable QR label for a box. The PNG encodes the box locator URL.
// @Tags         Boxes
// @Produce      png
// @Param        id   path      string  true  "Box ID"
// @Success      200  {file}    binary
// @Failure      404  {object}  ErrorResponse  "Box not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /boxes/{id}/label [get]
func (s *Server) handleGetBoxLabel(w http.ResponseWriter, r *http.Request) {
	label, err := s.labelService.Encode(r.Context(), r.PathValue("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "box not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to render label")
		}
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("X-Label-URL", label.URL)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(label.PNG)
}

// Item endpoints

// handleListBoxItems godoc
// @Summary      List box items
// @Description  List the items of one box with optional filters and sorting
// @Tags         Items
// @Produce      json
// @Param        id            path      string  true   "Box ID"
// @Param        search        query     string  false  "Substring filter on name, details"
// @Param        min_quantity  query     int     false  "Minimum quantity"
// @Param        max_quantity  query     int     false  "Maximum quantity"
// @Param        sort_by       query     string  false  "Sort field: name, quantity, created_at"
// @Param        order         query     string  false  "Sort order: asc, desc"
// @Success      200           {array}   domain.Item
// @Failure      404           {object}  ErrorResponse  "Box not found"
// @Failure      500           {object}  ErrorResponse  "Internal server error"
// @Router       /boxes/{id}/items [get]
func (s *Server) handleListBoxItems(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	filter := domain.ItemFilter{
		Search: q.Get("search"),
		SortBy: q.Get("sort_by"),
		Order:  domain.SortOrder(q.Get("order")),
	}
	if v := q.Get("min_quantity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MinQuantity = &n
		}
	}
	if v := q.Get("max_quantity"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			filter.MaxQuantity = &n
		}
	}

	items, err := s.itemService.ListByBox(r.Context(), r.PathValue("id"), filter)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "box not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to list items")
		}
		return
	}

	if items == nil {
		items = []*domain.Item{}
	}
	writeJSON(w, http.StatusOK, items)
}

// handleCreateItem godoc
// @Summary      Create item
// @Description  Create a new item inside an existing box
// @Tags         Items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request  body      driving.CreateItemRequest  true  "Item details"
// @Success      201      {object}  domain.Item
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      404      {object}  ErrorResponse  "Box not found"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /items [post]
func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req driving.CreateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.itemService.Create(r.Context(), req)
	if err != nil {
		switch err {
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "item name, box id and positive quantity are required")
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "box not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to create item")
		}
		return
	}

	writeJSON(w, http.StatusCreated, item)
}

// handleGetItem godoc
// @Summary      Get item
// @Description  Get an item by ID
// @Tags         Items
// @Produce      json
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  domain.Item
// @Failure      404  {object}  ErrorResponse  "Item not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /items/{id} [get]
func (s *Server) handleGetItem(w http.ResponseWriter, r *http.Request) {
	item, err := s.itemService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "item not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to get item")
		}
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// handleUpdateItem godoc
// @Summary      Update item
// @Description  Apply a partial update to an item; omitted fields are untouched
// @Tags         Items
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id       path      string                     true  "Item ID"
// @Param        request  body      driving.UpdateItemRequest  true  "Fields to update"
// @Success      200      {object}  domain.Item
// @Failure      400      {object}  ErrorResponse  "Invalid input"
// @Failure      401      {object}  ErrorResponse  "Unauthorized"
// @Failure      404      {object}  ErrorResponse  "Item not found"
// @Failure      500      {object}  ErrorResponse  "Internal server error"
// @Router       /items/{id} [put]
func (s *Server) handleUpdateItem(w http.ResponseWriter, r *http.Request) {
	var req driving.UpdateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := s.itemService.Update(r.Context(), r.PathValue("id"), req)
	if err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "item not found")
		case domain.ErrInvalidInput:
			writeError(w, http.StatusBadRequest, "invalid input")
		default:
			writeError(w, http.StatusInternalServerError, "failed to update item")
		}
		return
	}

	writeJSON(w, http.StatusOK, item)
}

// handleDeleteItem godoc
// @Summary      Delete item
// @Description  Delete an item by ID (admin only)
// @Tags         Items
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Item ID"
// @Success      200  {object}  StatusResponse
// @Failure      401  {object}  ErrorResponse  "Unauthorized"
// @Failure      403  {object}  ErrorResponse  "Forbidden - admin only"
// @Failure      404  {object}  ErrorResponse  "Item not found"
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /items/{id} [delete]
func (s *Server) handleDeleteItem(w http.ResponseWriter, r *http.Request) {
	if err := s.itemService.Delete(r.Context(), r.PathValue("id")); err != nil {
		switch err {
		case domain.ErrNotFound:
			writeError(w, http.StatusNotFound, "item not found")
		default:
			writeError(w, http.StatusInternalServerError, "failed to delete item")
		}
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Search endpoints

// handleSearch godoc
// @Summary      Global search
// @Description  Typo-tolerant search across boxes and items, merged into one ranked list. An empty query returns everything.
// @Tags         Search
// @Produce      json
// @Param        q      query     string  false  "Search query"
// @Param        limit  query     int     false  "Maximum results (default 50, capped at 500)"
// @Success      200    {object}  domain.SearchResponse
// @Failure      500    {object}  ErrorResponse  "Search failed"
// @Router       /search [get]
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	opts := domain.DefaultSearchOptions()
	if v := q.Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			opts.Limit = n
		}
	}

	resp, err := s.searchService.Search(r.Context(), q.Get("q"), opts)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "search failed")
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// scanRequest carries raw scanner text
// @Description Raw scanner payload
type scanRequest struct {
	Text string `json:"text" example:"https://crately.example.com/box/7c7254be-93a0-4a3c-8a5a-2f3e6c1d9b41"`
}

// handleScan godoc
// @Summary      Resolve scanned label
// @Description  Decode raw scanner text into a box. Unrecognized payloads and missing boxes are normal outcomes, not errors.
// @Tags         Search
// @Accept       json
// @Produce      json
// @Param        request  body      scanRequest  true  "Scanned text"
// @Success      200      {object}  domain.ScanResolution
// @Failure      400      {object}  ErrorResponse  "Invalid request body"
// @Failure      500      {object}  ErrorResponse  "Resolution failed"
// @Router       /scan [post]
func (s *Server) handleScan(w http.ResponseWriter, r *http.Request) {
	var req scanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	resolution, err := s.labelService.Resolve(r.Context(), req.Text)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "resolution failed")
		return
	}

	writeJSON(w, http.StatusOK, resolution)
}

// Stats endpoint

// handleStats godoc
// @Summary      Inventory stats
// @Description  Summarize the inventory: box count, item count, total quantity
// @Tags         Stats
// @Produce      json
// @Success      200  {object}  domain.Stats
// @Failure      500  {object}  ErrorResponse  "Internal server error"
// @Router       /stats [get]
func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.boxService.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to compute stats")
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// Helper functions

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
