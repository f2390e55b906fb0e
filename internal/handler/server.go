// Package handler implements the HTTP handlers for the RigReport API.
// Handlers are methods on Server, split into domain-specific files
// (boat.go, slip.go, ...) that all share the same struct. The HTTP surface
// is the demo's stand-in for a view layer: it consumes services, which
// consume the cached query layer, which consumes the store.
package handler

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rigreport/rigreport/internal/auth"
	"github.com/rigreport/rigreport/internal/domain"
	"github.com/rigreport/rigreport/internal/middleware"
	"github.com/rigreport/rigreport/internal/service"
)

// BoatServicer defines the business operations the boat handler depends on.
// Defining the interface here (in the consumer package) follows the Go
// convention: "accept interfaces, return concrete types". It lets handler
// tests inject a mock without touching the service layer or the store.
type BoatServicer interface {
	List(ctx context.Context) ([]domain.Boat, error)
	GetByID(ctx context.Context, id string) (domain.Boat, error)
	Create(ctx context.Context, b domain.Boat) (domain.Boat, error)
	Update(ctx context.Context, id string, patch domain.BoatPatch) (domain.Boat, error)
	Delete(ctx context.Context, id string) error
	MarkOK(ctx context.Context, id string) (domain.Boat, error)
}

// MaintenanceServicer defines the operations the maintenance handler uses.
type MaintenanceServicer interface {
	List(ctx context.Context) ([]domain.MaintenanceEntry, error)
	ListByBoatID(ctx context.Context, boatID string) ([]domain.MaintenanceEntry, error)
	GetByID(ctx context.Context, id string) (domain.MaintenanceEntry, error)
	Create(ctx context.Context, m domain.MaintenanceEntry) (domain.MaintenanceEntry, error)
	Update(ctx context.Context, id string, patch domain.MaintenanceEntryPatch) (domain.MaintenanceEntry, error)
	Delete(ctx context.Context, id string) error
	ReportIssue(ctx context.Context, in service.ReportIssueInput) (domain.MaintenanceEntry, error)
}

// Server holds every handler dependency. Construct it with NewServer in the
// composition root; tests construct it with only the pieces they exercise.
type Server struct {
	boats        BoatServicer
	equipment    *service.EquipmentService
	maintenance  MaintenanceServicer
	reservations *service.ReservationService
	slips        *service.SlipService
	admin        *service.AdminService
	session      *auth.Manager
	openapi      []byte
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	boats BoatServicer,
	equipment *service.EquipmentService,
	maintenance MaintenanceServicer,
	reservations *service.ReservationService,
	slips *service.SlipService,
	admin *service.AdminService,
	session *auth.Manager,
	openapi []byte,
) *Server {
	return &Server{
		boats:        boats,
		equipment:    equipment,
		maintenance:  maintenance,
		reservations: reservations,
		slips:        slips,
		admin:        admin,
		session:      session,
		openapi:      openapi,
	}
}

// Routes assembles the full router, gating mutating routes on the active
// role's permissions. Reads require fleet.read, which every role has.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()

	can := func(p auth.Permission) func(http.Handler) http.Handler {
		return middleware.RequirePermission(s.session, p)
	}

	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Get("/session", s.GetSession)
	r.Put("/session/role", s.PutSessionRole)
	r.Get("/users", s.ListUsers)
	r.Get("/users/{id}", s.GetUser)

	r.Route("/boats", func(r chi.Router) {
		r.Get("/", s.ListBoats)
		r.Get("/{id}", s.GetBoat)
		r.Get("/{id}/maintenance", s.ListBoatMaintenance)
		r.Get("/{id}/reservations", s.ListBoatReservations)
		r.With(can(auth.PermFleetWrite)).Post("/", s.CreateBoat)
		r.With(can(auth.PermFleetWrite)).Patch("/{id}", s.UpdateBoat)
		r.With(can(auth.PermFleetWrite)).Delete("/{id}", s.DeleteBoat)
		r.With(can(auth.PermMaintenanceWrite)).Post("/{id}/mark-ok", s.MarkBoatOK)
	})

	r.Route("/equipment", func(r chi.Router) {
		r.Get("/", s.ListEquipment)
		r.Get("/{id}", s.GetEquipment)
		r.With(can(auth.PermFleetWrite)).Post("/", s.CreateEquipment)
		r.With(can(auth.PermFleetWrite)).Patch("/{id}", s.UpdateEquipment)
		r.With(can(auth.PermFleetWrite)).Delete("/{id}", s.DeleteEquipment)
	})

	r.Route("/maintenance", func(r chi.Router) {
		r.Get("/", s.ListMaintenance)
		r.Get("/{id}", s.GetMaintenanceEntry)
		r.With(can(auth.PermMaintenanceReport)).Post("/report", s.ReportIssue)
		r.With(can(auth.PermMaintenanceWrite)).Post("/", s.CreateMaintenanceEntry)
		r.With(can(auth.PermMaintenanceWrite)).Patch("/{id}", s.UpdateMaintenanceEntry)
		r.With(can(auth.PermMaintenanceWrite)).Delete("/{id}", s.DeleteMaintenanceEntry)
	})

	r.Route("/reservations", func(r chi.Router) {
		r.Get("/", s.ListReservations)
		r.Get("/{id}", s.GetReservation)
		r.With(can(auth.PermReservationWrite)).Post("/", s.CreateReservation)
		r.With(can(auth.PermReservationWrite)).Patch("/{id}", s.UpdateReservation)
		r.With(can(auth.PermReservationWrite)).Delete("/{id}", s.DeleteReservation)
	})

	r.Route("/slips", func(r chi.Router) {
		r.Get("/", s.ListSlips)
		r.Get("/{id}", s.GetSlip)
		r.Get("/{id}/members", s.ListSlipMemberAssignments)
		r.Get("/{id}/boats", s.ListSlipBoatAssignments)
		r.Get("/{id}/payments", s.ListSlipPayments)
		r.Get("/{id}/reservations", s.ListSlipReservations)
		r.With(can(auth.PermSlipWrite)).Post("/", s.CreateSlip)
		r.With(can(auth.PermSlipWrite)).Patch("/{id}", s.UpdateSlip)
		r.With(can(auth.PermSlipWrite)).Delete("/{id}", s.DeleteSlip)
		r.With(can(auth.PermSlipWrite)).Post("/{id}/members", s.AssignSlipMember)
		r.With(can(auth.PermSlipWrite)).Post("/{id}/boats", s.AssignSlipBoat)
		r.With(can(auth.PermSlipWrite)).Post("/{id}/payments", s.RecordSlipPayment)
		r.With(can(auth.PermReservationWrite)).Post("/{id}/reservations", s.ReserveSlip)
	})

	r.Route("/slip-members", func(r chi.Router) {
		r.Get("/", s.ListSlipMembers)
		r.Get("/{id}", s.GetSlipMember)
		r.With(can(auth.PermSlipWrite)).Post("/", s.CreateSlipMember)
		r.With(can(auth.PermSlipWrite)).Patch("/{id}", s.UpdateSlipMember)
		r.With(can(auth.PermSlipWrite)).Delete("/{id}", s.DeleteSlipMember)
	})

	r.Get("/slip-member-assignments/{id}", s.GetSlipMemberAssignment)
	r.Get("/slip-boat-assignments/{id}", s.GetSlipBoatAssignment)
	r.With(can(auth.PermSlipWrite)).Delete("/slip-member-assignments/{id}", s.UnassignSlipMember)
	r.With(can(auth.PermSlipWrite)).Delete("/slip-boat-assignments/{id}", s.UnassignSlipBoat)
	r.With(can(auth.PermSlipWrite)).Patch("/slip-payments/{id}", s.UpdateSlipPayment)
	r.With(can(auth.PermSlipWrite)).Delete("/slip-payments/{id}", s.DeleteSlipPayment)
	r.With(can(auth.PermReservationWrite)).Patch("/slip-reservations/{id}", s.UpdateSlipReservation)
	r.With(can(auth.PermReservationWrite)).Delete("/slip-reservations/{id}", s.CancelSlipReservation)

	r.Route("/admin", func(r chi.Router) {
		r.Use(can(auth.PermAdmin))
		r.Post("/reset", s.ResetDemo)
		r.Post("/clear", s.ClearDemo)
	})

	return r
}
