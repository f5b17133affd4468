package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/cloudsaleshq/cloudsales/app/models"
)

// ClientRepository defines the interface for client-related database operations
type ClientRepository interface {
	Create(client *models.Client) error
	GetByID(id uuid.UUID) (*models.Client, error)
	GetByBillingEmail(email string) (*models.Client, error)
	Update(client *models.Client) error
	Delete(id uuid.UUID) error
	List(offset, limit int) ([]models.Client, error)
	ListByStatus(status models.ClientStatus) ([]models.Client, error)
	Count() (int64, error)
}

// UserRepository defines the interface for user-related database operations
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	GetByClientID(clientID uuid.UUID) ([]models.User, error)
	Update(user *models.User) error
	Delete(id uuid.UUID) error
	List(offset, limit int) ([]models.User, error)
}

// ProductRepository defines the interface for catalog operations
type ProductRepository interface {
	Create(product *models.Product) error
	GetByID(id uuid.UUID) (*models.Product, error)
	GetByCode(code string) (*models.Product, error)
	GetActive() ([]models.Product, error)
	Update(product *models.Product) error
	Delete(id uuid.UUID) error
	List(offset, limit int) ([]models.Product, error)
}

// QuotationRepository defines the interface for quotation operations.
// CreateWithItems persists the quotation and its lines in one transaction
// with the totals recomputed from the items.
type QuotationRepository interface {
	Create(quotation *models.Quotation) error
	CreateWithItems(quotation *models.Quotation) error
	GetByID(id uuid.UUID) (*models.Quotation, error)
	GetByNumber(number string) (*models.Quotation, error)
	GetByClientID(clientID uuid.UUID) ([]models.Quotation, error)
	Update(quotation *models.Quotation) error
	Delete(id uuid.UUID) error
	ListByStatus(status models.QuotationStatus, offset, limit int) ([]models.Quotation, error)
}

// SubscriptionRepository defines the interface for subscription operations
type SubscriptionRepository interface {
	Create(subscription *models.Subscription) error
	GetByID(id uuid.UUID) (*models.Subscription, error)
	GetByClientID(clientID uuid.UUID) ([]models.Subscription, error)
	Update(subscription *models.Subscription) error
	Delete(id uuid.UUID) error
	ListDueForBilling(asOf time.Time) ([]models.Subscription, error)
	List(offset, limit int) ([]models.Subscription, error)
}

// BillingCycleRepository defines the interface for billing cycle operations
type BillingCycleRepository interface {
	Create(cycle *models.BillingCycle) error
	GetByID(id uuid.UUID) (*models.BillingCycle, error)
	GetBySubscriptionID(subscriptionID uuid.UUID) ([]models.BillingCycle, error)
	GetByXenditInvoiceID(xenditInvoiceID string) (*models.BillingCycle, error)
	Update(cycle *models.BillingCycle) error
	ListOverdue(asOf time.Time) ([]models.BillingCycle, error)
	ListByStatus(status models.BillingCycleStatus) ([]models.BillingCycle, error)
}

// PaymentRepository defines the interface for payment operations
type PaymentRepository interface {
	Create(payment *models.Payment) error
	GetByID(id uuid.UUID) (*models.Payment, error)
	GetByXenditPaymentID(xenditPaymentID string) (*models.Payment, error)
	GetByClientID(clientID uuid.UUID, offset, limit int) ([]models.Payment, error)
	Update(payment *models.Payment) error
	ListByStatus(status models.PaymentStatus) ([]models.Payment, error)
}

// WalletRepository defines the interface for wallet operations.
// ApplyTransaction mutates the account balance and appends the transaction
// row inside a single database transaction.
type WalletRepository interface {
	CreateAccount(account *models.WalletAccount) error
	GetAccountByID(id uuid.UUID) (*models.WalletAccount, error)
	GetAccountByClientID(clientID uuid.UUID) (*models.WalletAccount, error)
	ApplyTransaction(accountID uuid.UUID, tx *models.WalletTransaction) error
	GetTransactions(accountID uuid.UUID, offset, limit int) ([]models.WalletTransaction, error)
}

// EmailLogRepository defines the interface for email log operations.
// FindByRelated resolves the related_type/related_id tagged pair.
type EmailLogRepository interface {
	Create(log *models.EmailLog) error
	GetByID(id uuid.UUID) (*models.EmailLog, error)
	GetByQuotationID(quotationID uuid.UUID) ([]models.EmailLog, error)
	FindByRelated(relatedType models.EmailRelatedType, relatedID uuid.UUID) ([]models.EmailLog, error)
	Update(log *models.EmailLog) error
}

// WebhookEventRepository defines the interface for webhook event operations.
// MarkProcessed persists the processed flag and timestamp for one event.
type WebhookEventRepository interface {
	Create(event *models.WebhookEvent) error
	GetByID(id uuid.UUID) (*models.WebhookEvent, error)
	ListUnprocessed(limit int) ([]models.WebhookEvent, error)
	MarkProcessed(id uuid.UUID, at *time.Time) error
}

// ProvisioningTaskRepository defines the interface for provisioning task operations
type ProvisioningTaskRepository interface {
	Create(task *models.ProvisioningTask) error
	GetByID(id uuid.UUID) (*models.ProvisioningTask, error)
	GetBySubscriptionItemID(itemID uuid.UUID) ([]models.ProvisioningTask, error)
	ListPending(limit int) ([]models.ProvisioningTask, error)
	Update(task *models.ProvisioningTask) error
}

// Repositories struct holds all repository instances
type Repositories struct {
	Client           ClientRepository
	User             UserRepository
	Product          ProductRepository
	Quotation        QuotationRepository
	Subscription     SubscriptionRepository
	BillingCycle     BillingCycleRepository
	Payment          PaymentRepository
	Wallet           WalletRepository
	EmailLog         EmailLogRepository
	WebhookEvent     WebhookEventRepository
	ProvisioningTask ProvisioningTaskRepository
}

// NewRepositories creates a new instance of all repositories
func NewRepositories(db *gorm.DB) *Repositories {
	return &Repositories{
		Client:           NewClientRepository(db),
		User:             NewUserRepository(db),
		Product:          NewProductRepository(db),
		Quotation:        NewQuotationRepository(db),
		Subscription:     NewSubscriptionRepository(db),
		BillingCycle:     NewBillingCycleRepository(db),
		Payment:          NewPaymentRepository(db),
		Wallet:           NewWalletRepository(db),
		EmailLog:         NewEmailLogRepository(db),
		WebhookEvent:     NewWebhookEventRepository(db),
		ProvisioningTask: NewProvisioningTaskRepository(db),
	}
}
