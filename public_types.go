package client

import (
	"github.com/quickcourt/client-go/internal/eventqueue"
	"github.com/quickcourt/client-go/internal/session"
	"github.com/quickcourt/client-go/internal/transport"
	"github.com/quickcourt/client-go/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Domain entities
	Venue         = types.Venue
	Court         = types.Court
	PriceRange    = types.PriceRange
	Booking       = types.Booking
	CustomerInfo  = types.CustomerInfo
	LocationCount = types.LocationCount
	HealthStatus  = types.HealthStatus
	SearchEvent   = types.SearchEvent

	// Filters and requests
	VenueFilters               = types.VenueFilters
	BookingFilters             = types.BookingFilters
	CreateBookingRequest       = types.CreateBookingRequest
	NewBookingRequest          = types.NewBookingRequest
	RegisterUserRequest        = types.RegisterUserRequest
	VerifyOTPRequest           = types.VerifyOTPRequest
	UpdateBookingStatusRequest = types.UpdateBookingStatusRequest

	// Responses
	VenueList   = types.VenueList
	BookingList = types.BookingList
	BookingAck  = types.BookingAck
	AuthResult  = types.AuthResult

	// Infrastructure
	Session         = session.Session
	SessionStore    = session.Store
	Navigator       = transport.Navigator
	PathRecorder    = transport.PathRecorder
	RetryPolicy     = transport.RetryPolicy
	AnalyticsConfig = eventqueue.Config
)

// Booking statuses used by the backend.
const (
	BookingPending   = types.BookingPending
	BookingConfirmed = types.BookingConfirmed
	BookingCompleted = types.BookingCompleted
	BookingCancelled = types.BookingCancelled
)

// User roles recognized by the backend.
const (
	RoleCustomer      = session.RoleCustomer
	RoleFacilityOwner = session.RoleFacilityOwner
	RoleAdministrator = session.RoleAdministrator
)

// NewPathRecorder returns the default Navigator starting at the given
// path.
func NewPathRecorder(current string) *PathRecorder { return transport.NewPathRecorder(current) }

// NewMemorySessionStore returns the default in-process session store.
func NewMemorySessionStore() *session.MemoryStore { return session.NewMemoryStore() }
