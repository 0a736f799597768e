// Package model holds the GORM table structs of the matching service.
package model

// All lists every table owned or read by the service, in migration order.
func All() []any {
	return []any{
		&AnnouncementModel{},
		&DelivererModel{},
		&ApplicationModel{},
		&RouteModel{},
		&RouteStopModel{},
	}
}
