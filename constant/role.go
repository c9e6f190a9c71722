package constant

type Role string

const (
	RoleUser       Role = "user"
	RoleAdmin      Role = "admin"
	RoleTechnician Role = "technician"
)

var ValidRoles = map[Role]bool{
	RoleUser:       true,
	RoleAdmin:      true,
	RoleTechnician: true,
}
