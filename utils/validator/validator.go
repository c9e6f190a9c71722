package validatorx

import (
	"sync"

	gpvalidator "github.com/go-playground/validator/v10"
	"github.com/muhammadheryan/gadgetfix/constant"
)

var (
	v   *gpvalidator.Validate
	mut sync.Mutex
)

// Init initializes the validator singleton (idempotent)
func Init() {
	mut.Lock()
	defer mut.Unlock()
	if v != nil {
		return
	}
	v = gpvalidator.New()
	_ = v.RegisterValidation("role", func(fl gpvalidator.FieldLevel) bool {
		return constant.ValidRoles[constant.Role(fl.Field().String())]
	})
	_ = v.RegisterValidation("repair_status", func(fl gpvalidator.FieldLevel) bool {
		return constant.ValidRepairStatuses[constant.RepairStatus(fl.Field().String())]
	})
	_ = v.RegisterValidation("payment_status", func(fl gpvalidator.FieldLevel) bool {
		return constant.ValidPaymentStatuses[constant.PaymentStatus(fl.Field().String())]
	})
	_ = v.RegisterValidation("payment_method", func(fl gpvalidator.FieldLevel) bool {
		return constant.ValidPaymentMethods[constant.PaymentMethod(fl.Field().String())]
	})
	_ = v.RegisterValidation("ticket_status", func(fl gpvalidator.FieldLevel) bool {
		return constant.ValidTicketStatuses[constant.TicketStatus(fl.Field().String())]
	})
}

// ValidateStruct validates a struct using go-playground/validator
func ValidateStruct(s interface{}) error {
	if v == nil {
		Init()
	}
	return v.Struct(s)
}
