package models

import "time"

// SystemStatus is the controller's housekeeping record.
type SystemStatus struct {
	LastMaintenance time.Time `json:"last_maintenance"`
	Alerts          []string  `json:"alerts"`
	Mode            string    `json:"mode"` // normal
}

// ControllerStatus is the payload of GET /api/controller/status.
type ControllerStatus struct {
	SystemStatus    SystemStatus      `json:"system_status"`
	UserPreferences map[string]string `json:"user_preferences"`
	ActivePatterns  int               `json:"active_patterns"` // response pattern categories
}
