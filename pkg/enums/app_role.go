package enums

import "fmt"

// AppRole separates the admin shell from the customer-facing site.
type AppRole string

const (
	AppRoleAdmin    AppRole = "admin"
	AppRoleCustomer AppRole = "customer"
)

var validAppRoles = []AppRole{
	AppRoleAdmin,
	AppRoleCustomer,
}

// String implements fmt.Stringer.
func (a AppRole) String() string {
	return string(a)
}

// IsValid reports whether the value is a known AppRole.
func (a AppRole) IsValid() bool {
	for _, candidate := range validAppRoles {
		if candidate == a {
			return true
		}
	}
	return false
}

// ParseAppRole converts the raw string to AppRole.
func ParseAppRole(value string) (AppRole, error) {
	for _, candidate := range validAppRoles {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid app role %q", value)
}
