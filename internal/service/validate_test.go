package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateContact(t *testing.T) {
	assert.NoError(t, validateContact("9876543210"))
	assert.Error(t, validateContact("987654321"))   // 9 digits
	assert.Error(t, validateContact("98765432100")) // 11 digits
	assert.Error(t, validateContact("98765abc10"))
	assert.Error(t, validateContact(""))
}

func TestValidateID(t *testing.T) {
	assert.NoError(t, validateID("dona_id", "DON100"))
	assert.NoError(t, validateID("hosp_id", "hosp1"))
	assert.Error(t, validateID("dona_id", ""))
	assert.Error(t, validateID("dona_id", "DON-100"))
	assert.Error(t, validateID("dona_id", "DON 100"))
	assert.Error(t, validateID("dona_id", "DON';--"))
}

func TestValidateBloodGroup(t *testing.T) {
	for _, g := range []string{"A+", "A-", "B+", "B-", "O+", "O-", "AB+", "AB-"} {
		assert.NoError(t, validateBloodGroup(g))
	}
	assert.Error(t, validateBloodGroup("a+")) // group codes are uppercase
	assert.Error(t, validateBloodGroup("C+"))
	assert.Error(t, validateBloodGroup(""))
}

func TestValidateDesignation(t *testing.T) {
	for _, d := range []string{"Manager", "Lab Technician", "Nurse", "Receptionist", "Other"} {
		assert.NoError(t, validateDesignation(d))
	}
	assert.Error(t, validateDesignation(""))
	assert.Error(t, validateDesignation("manager")) // form values are capitalized
	assert.Error(t, validateDesignation("CEO"))
}

func TestValidateQuantity(t *testing.T) {
	assert.NoError(t, validateQuantity(1, 50))
	assert.NoError(t, validateQuantity(50, 50))
	assert.Error(t, validateQuantity(0, 50))
	assert.Error(t, validateQuantity(51, 50))
	assert.Error(t, validateQuantity(-3, 50))
	assert.NoError(t, validateQuantity(100, 100))
}
