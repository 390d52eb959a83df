package domain

// BloodGroup ABO/Rh type code, one of eight values.
type BloodGroup string

const (
	BloodGroupAPos  BloodGroup = "A+"
	BloodGroupANeg  BloodGroup = "A-"
	BloodGroupBPos  BloodGroup = "B+"
	BloodGroupBNeg  BloodGroup = "B-"
	BloodGroupOPos  BloodGroup = "O+"
	BloodGroupONeg  BloodGroup = "O-"
	BloodGroupABPos BloodGroup = "AB+"
	BloodGroupABNeg BloodGroup = "AB-"
)

// BloodGroups all valid codes, in the order the UI presents them.
var BloodGroups = []BloodGroup{
	BloodGroupAPos, BloodGroupANeg,
	BloodGroupBPos, BloodGroupBNeg,
	BloodGroupOPos, BloodGroupONeg,
	BloodGroupABPos, BloodGroupABNeg,
}

// ValidBloodGroup reports whether s is one of the eight codes.
func ValidBloodGroup(s string) bool {
	for _, g := range BloodGroups {
		if string(g) == s {
			return true
		}
	}
	return false
}
