package internal

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"github.com/voyagio/sellerwallet/internal/model"
)

type Handlers struct {
	Service IService
	secret  string
	logger  *zap.SugaredLogger
}

func NewHandlers(Service IService, secret string, logger *zap.SugaredLogger) *Handlers {
	return &Handlers{Service: Service, secret: secret, logger: logger}
}

func (h *Handlers) GetBalance(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	balance, err := h.Service.GetBalance(c.Context(), ownerID)
	if err != nil {
		h.logger.Errorf("Error on balance request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"balance": balance})
}

func (h *Handlers) ListBankAccounts(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	accounts, err := h.Service.ListBankAccounts(c.Context(), ownerID)
	if err != nil {
		h.logger.Errorf("Error on list accounts request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(accounts)
}

func (h *Handlers) CreateBankAccount(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var in model.BankAccountInput
	if err = c.BodyParser(&in); err != nil {
		h.logger.Errorf("Error on create account request: %s", err.Error())
		return c.SendStatus(fiber.StatusBadRequest)
	}

	account, err := h.Service.CreateBankAccount(c.Context(), ownerID, in)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"errors": ve.Reasons})
		}
		h.logger.Errorf("Error on create account request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(account.Output())
}

func (h *Handlers) SetDefaultBankAccount(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	accountID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err = h.Service.SetDefaultBankAccount(c.Context(), ownerID, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		h.logger.Errorf("Error on set default account request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusOK)
}

func (h *Handlers) DeleteBankAccount(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	accountID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	err = h.Service.DeleteBankAccount(c.Context(), ownerID, accountID)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		if errors.Is(err, ErrAccountInUse) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": ErrAccountInUse.Error()})
		}
		h.logger.Errorf("Error on delete account request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.SendStatus(fiber.StatusNoContent)
}

// ValidateWithdrawal is the speculative pre-check: it always answers 200
// and reports every failed precondition, mutating nothing.
func (h *Handlers) ValidateWithdrawal(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var in model.WithdrawalInput
	if err = c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	result, err := h.Service.ValidateWithdrawal(c.Context(), ownerID, in.Amount, in.BankAccountID)
	if err != nil {
		h.logger.Errorf("Error on validate withdrawal request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(result)
}

func (h *Handlers) WithdrawalAvailability(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	ok, err := h.Service.CanCreateWithdrawal(c.Context(), ownerID)
	if err != nil {
		h.logger.Errorf("Error on withdrawal availability request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{"canCreate": ok})
}

func (h *Handlers) CreateWithdrawal(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	var in model.WithdrawalInput
	if err = c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	w, err := h.Service.CreateWithdrawal(c.Context(), ownerID, in.Amount, in.BankAccountID)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return c.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"valid": false, "errors": ve.Reasons})
		}
		if errors.Is(err, ErrInsufficientBalance) {
			return c.SendStatus(fiber.StatusPaymentRequired)
		}
		if errors.Is(err, ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		h.logger.Errorf("Error on create withdrawal request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusCreated).JSON(w)
}

type cancelInput struct {
	Reason string `json:"reason"`
}

func (h *Handlers) CancelWithdrawal(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	requestID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var in cancelInput
	if err = c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	w, err := h.Service.CancelWithdrawal(c.Context(), ownerID, requestID, in.Reason)
	if err != nil {
		if errors.Is(err, ErrReasonRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrReasonRequired.Error()})
		}
		if errors.Is(err, ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		if errors.Is(err, ErrInvalidState) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": ErrInvalidState.Error()})
		}
		h.logger.Errorf("Error on cancel withdrawal request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(w)
}

func (h *Handlers) ListWithdrawals(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("pageSize", "20"))

	list, err := h.Service.ListWithdrawals(c.Context(), ownerID, c.Query("status"), page, pageSize)
	if err != nil {
		if errors.Is(err, ErrUnknownStatus) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": ErrUnknownStatus.Error()})
		}
		h.logger.Errorf("Error on list withdrawals request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(list)
}

func (h *Handlers) GetStatistics(c *fiber.Ctx) error {
	ownerID, err := h.ownerIDFromToken(c)
	if err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	from, err := parseDate(c.Query("from"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	to, err := parseDate(c.Query("to"))
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	stats, err := h.Service.GetStatistics(c.Context(), ownerID, from, to)
	if err != nil {
		h.logger.Errorf("Error on statistics request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(stats)
}

func (h *Handlers) ListPendingWithdrawals(c *fiber.Ctx) error {
	if _, err := h.ownerIDFromToken(c); err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	withdrawals, err := h.Service.ListPendingWithdrawals(c.Context())
	if err != nil {
		h.logger.Errorf("Error on pending withdrawals request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(withdrawals)
}

type decisionInput struct {
	Action    string `json:"action"`
	NetAmount int64  `json:"netAmount"`
	Reason    string `json:"reason"`
}

func (h *Handlers) DecideWithdrawal(c *fiber.Ctx) error {
	if _, err := h.ownerIDFromToken(c); err != nil {
		return c.SendStatus(fiber.StatusUnauthorized)
	}

	requestID, err := paramID(c)
	if err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}

	var in decisionInput
	if err = c.BodyParser(&in); err != nil {
		return c.SendStatus(fiber.StatusBadRequest)
	}
	if in.Action != "approve" && in.Action != "reject" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "action must be approve or reject"})
	}

	w, err := h.Service.DecideWithdrawal(c.Context(), requestID, in.Action == "approve", in.NetAmount, in.Reason)
	if err != nil {
		if errors.Is(err, ErrReasonRequired) || errors.Is(err, ErrNetAmountRequired) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
		}
		if errors.Is(err, ErrNotFound) {
			return c.SendStatus(fiber.StatusNotFound)
		}
		if errors.Is(err, ErrInvalidState) {
			return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": ErrInvalidState.Error()})
		}
		if errors.Is(err, ErrInsufficientBalance) {
			return c.SendStatus(fiber.StatusPaymentRequired)
		}
		h.logger.Errorf("Error on decide withdrawal request: %s", err.Error())
		return c.SendStatus(fiber.StatusInternalServerError)
	}

	return c.Status(fiber.StatusOK).JSON(w)
}

func (h *Handlers) ownerIDFromToken(c *fiber.Ctx) (int64, error) {
	tokenString := c.Cookies("token")
	claims := jwt.MapClaims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(h.secret), nil
	})
	if err != nil {
		return 0, err
	}

	id, ok := claims["id"].(string)
	if !ok {
		return 0, ErrNotFound
	}
	return strconv.ParseInt(id, 10, 64)
}

func paramID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

func parseDate(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}

	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		t, err = time.Parse(time.RFC3339, s)
		if err != nil {
			return nil, err
		}
	}
	return &t, nil
}
