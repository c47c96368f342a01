package auth

import "github.com/barberrock/booking-api/internal/httperr"

type Action int

const (
	ActionBookAppointment Action = iota + 1
	ActionViewPromotions
	ActionViewPendingSurvey
	ActionViewAgenda
	ActionChangeAppointmentStatus
	ActionViewBarberQR
	ActionManageSchedule
	ActionManageAlerts
	ActionManageUsers
	ActionManageCatalog
	ActionManageGallery
	ActionViewAuditLogs
	ActionViewOwnProfile
)

var policy = map[Action][]Role{
	ActionBookAppointment:         {RoleClient},
	ActionViewPromotions:          {RoleClient},
	ActionViewPendingSurvey:       {RoleClient},
	ActionViewAgenda:              {RoleBarber, RoleAdmin},
	ActionChangeAppointmentStatus: {RoleBarber, RoleAdmin},
	ActionViewBarberQR:            {RoleBarber, RoleAdmin},
	ActionManageSchedule:          {RoleBarber, RoleAdmin},
	ActionManageAlerts:            {RoleAdmin},
	ActionManageUsers:             {RoleAdmin},
	ActionManageCatalog:           {RoleAdmin},
	ActionManageGallery:           {RoleAdmin},
	ActionViewAuditLogs:           {RoleAdmin},
	ActionViewOwnProfile:          {RoleClient, RoleBarber, RoleAdmin},
}

// ownerScoped actions restrict barbers to resources they own.
var ownerScoped = map[Action]bool{
	ActionViewAgenda:              true,
	ActionChangeAppointmentStatus: true,
	ActionViewBarberQR:            true,
	ActionManageSchedule:          true,
}

// Authorize is the single role check for every operation.
func Authorize(p Principal, action Action) error {
	for _, r := range policy[action] {
		if r == p.Role {
			return nil
		}
	}
	if action == ActionBookAppointment {
		return httperr.Forbidden("client_only", "Debes iniciar sesión como cliente para agendar una cita.")
	}
	return httperr.Forbidden("forbidden", "No autorizado.")
}

// AuthorizeOwner additionally requires a barber to own the resource, given
// as the owning barber's user id. Admins pass unconditionally.
func AuthorizeOwner(p Principal, action Action, ownerUserID uint) error {
	if err := Authorize(p, action); err != nil {
		return err
	}
	if p.Role == RoleBarber && ownerScoped[action] && p.UserID != ownerUserID {
		return httperr.Forbidden("forbidden", "No autorizado.")
	}
	return nil
}
