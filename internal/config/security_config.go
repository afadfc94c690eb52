package config

type SecurityLevel int

const (
	SecurityPublic SecurityLevel = iota // No authentication
	SecurityAdmin                       // Admin access token required
)

// EndpointSecurityConfig maps "METHOD route-template" to the required security level
var EndpointSecurityConfig = map[string]SecurityLevel{
	// Public booking flow
	"GET /healthz":                              SecurityPublic,
	"GET /api/v1/locations":                     SecurityPublic,
	"GET /api/v1/vehicles":                      SecurityPublic,
	"POST /api/v1/quotes/rental":                SecurityPublic,
	"POST /api/v1/quotes/rental/preview":        SecurityPublic,
	"POST /api/v1/quotes/transfer":              SecurityPublic,
	"POST /api/v1/reservations":                 SecurityPublic,
	"GET /api/v1/reservations/{number}":         SecurityPublic,
	"POST /api/v1/reservations/{number}/cancel": SecurityPublic,
	"POST /api/v1/transfers":                    SecurityPublic,
	"GET /api/v1/transfers/{number}":            SecurityPublic,
	"POST /api/v1/admin/login":                  SecurityPublic,

	// Back office
	"GET /api/v1/admin/seasons":                        SecurityAdmin,
	"POST /api/v1/admin/seasons":                       SecurityAdmin,
	"PUT /api/v1/admin/seasons/{id}":                   SecurityAdmin,
	"DELETE /api/v1/admin/seasons/{id}":                SecurityAdmin,
	"GET /api/v1/admin/current-season":                 SecurityAdmin,
	"PUT /api/v1/admin/current-season":                 SecurityAdmin,
	"DELETE /api/v1/admin/current-season":              SecurityAdmin,
	"GET /api/v1/admin/transfer-tiers":                 SecurityAdmin,
	"POST /api/v1/admin/transfer-tiers":                SecurityAdmin,
	"PUT /api/v1/admin/transfer-tiers/{id}":            SecurityAdmin,
	"DELETE /api/v1/admin/transfer-tiers/{id}":         SecurityAdmin,
	"GET /api/v1/admin/vehicle-classes":                SecurityAdmin,
	"PUT /api/v1/admin/vehicles/{id}/pricing-tiers":    SecurityAdmin,
	"PUT /api/v1/admin/vehicle-classes/{id}/pricing":   SecurityAdmin,
	"POST /api/v1/admin/reservations/{number}/confirm": SecurityAdmin,
}

// GetSecurityLevel returns the security level for a route.
// Unlisted routes default to admin.
func GetSecurityLevel(method, pathTemplate string) SecurityLevel {
	if level, ok := EndpointSecurityConfig[method+" "+pathTemplate]; ok {
		return level
	}
	return SecurityAdmin
}
