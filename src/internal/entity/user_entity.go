package entity

import "time"

const (
	RoleAdmin   = "admin"
	RoleUser    = "user"
	RoleTeknisi = "teknisi"

	// RoleTechnicianLegacy is an older synonym still present in ledger rows
	// written before the role strings were unified.
	RoleTechnicianLegacy = "technician"
)

// NormalizeRole maps the legacy label to the canonical stored value. Unknown
// strings pass through unchanged so validation can reject them.
func NormalizeRole(role string) string {
	if role == RoleTechnicianLegacy {
		return RoleTeknisi
	}
	return role
}

// OwnerRoleSynonyms returns every owner_role literal that ledger rows may
// carry for an account of the given role. All ledger reads go through this
// so the teknisi/technician split is handled in exactly one place.
func OwnerRoleSynonyms(role string) []string {
	if NormalizeRole(role) == RoleTeknisi {
		return []string{RoleTeknisi, RoleTechnicianLegacy}
	}
	return []string{role}
}

type User struct {
	ID            uint64     `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	Email         string     `db:"email" json:"email"`
	Phone         string     `db:"phone" json:"phone"`
	Role          string     `db:"role" json:"role"`
	Password      string     `db:"password" json:"-"`
	BankName      *string    `db:"bank_name" json:"bank_name,omitempty"`
	AccountName   *string    `db:"account_name" json:"account_name,omitempty"`
	AccountNumber *string    `db:"account_number" json:"account_number,omitempty"`
	CreatedAt     time.Time  `db:"created_at" json:"created_at"`
	UpdatedAt     *time.Time `db:"updated_at" json:"updated_at,omitempty"`
}
