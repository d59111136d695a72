package handlers

import (
	"net/http"
	"strconv"

	"github.com/Shubhendu-bhakat/cafe-demo/internal/auth"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/http/respond"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/middleware"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/models/dto"
	"github.com/Shubhendu-bhakat/cafe-demo/internal/service"
)

// BookingHandler owns the reservation endpoints.
type BookingHandler struct {
	bookings *service.Bookings
	tokens   middleware.TokenVerifier
}

// NewBookingHandler constructs the handler.
func NewBookingHandler(bookings *service.Bookings, tokens middleware.TokenVerifier) *BookingHandler {
	return &BookingHandler{bookings: bookings, tokens: tokens}
}

// Register attaches booking routes to the mux. Everything except guest
// booking requires a bearer token.
func (h *BookingHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /api/bookings/book", h.handleCreate)
	mux.HandleFunc("GET /api/bookings/my-bookings", middleware.RequireAuth(h.tokens, h.handleListMine))
	mux.HandleFunc("GET /api/bookings/booking/{id}", middleware.RequireAuth(h.tokens, h.handleGet))
	mux.HandleFunc("PUT /api/bookings/booking/{id}", middleware.RequireAuth(h.tokens, h.handleUpdate))
	mux.HandleFunc("DELETE /api/bookings/booking/{id}", middleware.RequireAuth(h.tokens, h.handleCancel))
}

func (h *BookingHandler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateBookingRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	booking, err := h.bookings.Create(r.Context(), req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusCreated, dto.CreateBookingResponse{
		Message: "Booking created successfully! We'll contact you soon.",
		Booking: dto.NewBookingSummary(booking),
	})
}

func (h *BookingHandler) handleListMine(w http.ResponseWriter, r *http.Request) {
	claims, _ := auth.FromContext(r.Context())
	bookings, err := h.bookings.ListMine(r.Context(), claims.UserID)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, dto.BookingListResponse{Bookings: bookings})
}

func (h *BookingHandler) handleGet(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}
	claims, _ := auth.FromContext(r.Context())
	booking, err := h.bookings.Get(r.Context(), claims.UserID, id)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, dto.BookingResponse{Booking: booking})
}

func (h *BookingHandler) handleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}
	var req dto.UpdateBookingRequest
	if !decodeOptionalJSON(w, r, &req) {
		return
	}
	claims, _ := auth.FromContext(r.Context())
	booking, err := h.bookings.Update(r.Context(), claims.UserID, id, req)
	if err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, dto.BookingResponse{Message: "Booking updated successfully", Booking: booking})
}

func (h *BookingHandler) handleCancel(w http.ResponseWriter, r *http.Request) {
	id, ok := bookingID(w, r)
	if !ok {
		return
	}
	claims, _ := auth.FromContext(r.Context())
	if err := h.bookings.Cancel(r.Context(), claims.UserID, id); err != nil {
		respondServiceError(w, r, err)
		return
	}
	respond.JSON(w, r, http.StatusOK, dto.MessageResponse{Message: "Booking cancelled successfully"})
}

// bookingID parses the {id} path value. Ids that parse but match nothing are
// left for the service to report as not found.
func bookingID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		respond.Error(w, r, http.StatusBadRequest, "Invalid booking id")
		return 0, false
	}
	return id, true
}
