package repository

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/cloudsaleshq/cloudsales/app/models"
	"github.com/cloudsaleshq/cloudsales/internal/pkg/dberr"
)

// walletRepository implements the WalletRepository interface
type walletRepository struct {
	db *gorm.DB
}

// NewWalletRepository creates a new wallet repository instance
func NewWalletRepository(db *gorm.DB) WalletRepository {
	return &walletRepository{db: db}
}

// CreateAccount opens a wallet for a client. A second wallet for the same
// client surfaces as dberr.ErrDuplicateKey.
func (r *walletRepository) CreateAccount(account *models.WalletAccount) error {
	return dberr.Map(r.db.Create(account).Error)
}

// GetAccountByID retrieves a wallet account by its ID
func (r *walletRepository) GetAccountByID(id uuid.UUID) (*models.WalletAccount, error) {
	var account models.WalletAccount
	if err := r.db.First(&account, "id = ?", id).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &account, nil
}

// GetAccountByClientID retrieves the wallet of one client
func (r *walletRepository) GetAccountByClientID(clientID uuid.UUID) (*models.WalletAccount, error) {
	var account models.WalletAccount
	if err := r.db.Where("client_id = ?", clientID).First(&account).Error; err != nil {
		return nil, dberr.Map(err)
	}
	return &account, nil
}

// ApplyTransaction validates the mutation, locks the account row, adjusts
// the balance and appends the transaction, all in one database
// transaction. Concurrent webhook deliveries serialize on the row lock.
func (r *walletRepository) ApplyTransaction(accountID uuid.UUID, wtx *models.WalletTransaction) error {
	if err := wtx.Validate(); err != nil {
		return err
	}

	err := r.db.Transaction(func(tx *gorm.DB) error {
		var account models.WalletAccount
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&account, "id = ?", accountID).Error; err != nil {
			return err
		}

		account.Apply(wtx)
		if err := tx.Model(&account).Update("balance", account.Balance).Error; err != nil {
			return err
		}

		wtx.WalletAccountID = account.ID
		return tx.Create(wtx).Error
	})
	return dberr.Map(err)
}

// GetTransactions returns the mutation history of a wallet, newest first
func (r *walletRepository) GetTransactions(accountID uuid.UUID, offset, limit int) ([]models.WalletTransaction, error) {
	var txs []models.WalletTransaction
	err := r.db.Where("wallet_account_id = ?", accountID).
		Offset(offset).Limit(limit).
		Order("created_at DESC").
		Find(&txs).Error
	if err != nil {
		return nil, dberr.Map(err)
	}
	return txs, nil
}
