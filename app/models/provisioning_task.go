package models

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ProvisioningAction is the kind of change a task performs in the external
// system.
type ProvisioningAction string

const (
	ProvisioningActionActivate       ProvisioningAction = "ACTIVATE"
	ProvisioningActionSuspend        ProvisioningAction = "SUSPEND"
	ProvisioningActionChangeQuantity ProvisioningAction = "CHANGE_QUANTITY"
	ProvisioningActionTerminate      ProvisioningAction = "TERMINATE"
)

func (a ProvisioningAction) Valid() bool {
	switch a {
	case ProvisioningActionActivate, ProvisioningActionSuspend,
		ProvisioningActionChangeQuantity, ProvisioningActionTerminate:
		return true
	}
	return false
}

// ProvisioningTarget names the external system a task runs against.
type ProvisioningTarget string

const (
	ProvisioningTargetGWorkspace ProvisioningTarget = "GWORKSPACE"
	ProvisioningTargetGCP        ProvisioningTarget = "GCP"
)

func (t ProvisioningTarget) Valid() bool {
	return t == ProvisioningTargetGWorkspace || t == ProvisioningTargetGCP
}

// ProvisioningTaskStatus is the execution state of an automation task.
type ProvisioningTaskStatus string

const (
	ProvisioningTaskPending ProvisioningTaskStatus = "PENDING"
	ProvisioningTaskRunning ProvisioningTaskStatus = "RUNNING"
	ProvisioningTaskSuccess ProvisioningTaskStatus = "SUCCESS"
	ProvisioningTaskFailed  ProvisioningTaskStatus = "FAILED"
)

func (s ProvisioningTaskStatus) Valid() bool {
	switch s {
	case ProvisioningTaskPending, ProvisioningTaskRunning, ProvisioningTaskSuccess, ProvisioningTaskFailed:
		return true
	}
	return false
}

// ProvisioningTask is one unit of automation work against Google Workspace
// or GCP for a subscription item. Rows go away with their item.
type ProvisioningTask struct {
	ID                 uuid.UUID              `gorm:"type:uuid;primaryKey" json:"id"`
	SubscriptionItemID uuid.UUID              `gorm:"type:uuid;not null;index" json:"subscription_item_id" validate:"required"`
	Action             ProvisioningAction     `gorm:"type:varchar(20);not null" json:"action" validate:"oneof=ACTIVATE SUSPEND CHANGE_QUANTITY TERMINATE"`
	TargetSystem       ProvisioningTarget     `gorm:"type:varchar(20);not null" json:"target_system" validate:"oneof=GWORKSPACE GCP"`
	PayloadJSON        string                 `gorm:"type:jsonb" json:"payload_json,omitempty"`
	Status             ProvisioningTaskStatus `gorm:"type:varchar(20);not null;default:'PENDING';index" json:"status" validate:"oneof=PENDING RUNNING SUCCESS FAILED"`
	ExternalReference  string                 `gorm:"type:varchar(255)" json:"external_reference" validate:"max=255"`
	ErrorMessage       string                 `gorm:"type:text" json:"error_message"`
	CreatedAt          time.Time              `gorm:"not null;default:now();autoCreateTime:false" json:"created_at"`
	ExecutedAt         *time.Time             `json:"executed_at,omitempty"`

	SubscriptionItem *SubscriptionItem `gorm:"foreignKey:SubscriptionItemID" json:"subscription_item,omitempty"`
}

func (t *ProvisioningTask) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

func (t *ProvisioningTask) Validate() error {
	v := validator.New()

	return v.Struct(t)
}

// MarkSucceeded records a successful run and the external job reference.
func (t *ProvisioningTask) MarkSucceeded(externalRef string, at time.Time) {
	t.Status = ProvisioningTaskSuccess
	t.ExternalReference = externalRef
	t.ErrorMessage = ""
	t.ExecutedAt = &at
}

// MarkFailed records a failed run with the error returned by the external
// system.
func (t *ProvisioningTask) MarkFailed(message string, at time.Time) {
	t.Status = ProvisioningTaskFailed
	t.ErrorMessage = message
	t.ExecutedAt = &at
}
