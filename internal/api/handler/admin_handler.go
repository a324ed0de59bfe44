package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/janasiksha/jpk-web/internal/core/domain"
	"github.com/janasiksha/jpk-web/internal/core/ports"
)

// AdminHandler serves the admin panel's dashboard, users and transactions
// tabs. The panel is a standalone page and is not behind the session gate.
type AdminHandler struct {
	admin ports.AdminService
}

func NewAdminHandler(admin ports.AdminService) *AdminHandler {
	return &AdminHandler{admin: admin}
}

// Dashboard returns the donation summary.
//
// @Summary      Admin dashboard
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.DashboardSummary
// @Router       /api/admin/dashboard [get]
func (h *AdminHandler) Dashboard(c echo.Context) error {
	s, err := h.admin.Dashboard(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, s)
}

// ListUsers returns the user table.
//
// @Summary      List admin users
// @Tags         admin
// @Produce      json
// @Success      200  {object}  usersResponse
// @Router       /api/admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.admin.ListUsers(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, usersResponse{Users: users})
}

// DraftUser returns the blank row for "Add User".
//
// @Summary      Draft admin user
// @Tags         admin
// @Produce      json
// @Success      200  {object}  domain.MockUser
// @Router       /api/admin/users/draft [get]
func (h *AdminHandler) DraftUser(c echo.Context) error {
	u, err := h.admin.DraftUser(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, u)
}

// CreateUser saves a new row.
//
// @Summary      Create admin user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        body  body      adminUserRequest  true  "User row"
// @Success      201   {object}  domain.MockUser
// @Failure      409   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/admin/users [post]
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req adminUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u, err := h.admin.CreateUser(c.Request().Context(), req.toDomain())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, u)
}

// UpdateUser replaces the row with the given id.
//
// @Summary      Update admin user
// @Tags         admin
// @Accept       json
// @Produce      json
// @Param        id    path      int               true  "User id"
// @Param        body  body      adminUserRequest  true  "User row"
// @Success      200   {object}  domain.MockUser
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /api/admin/users/{id} [put]
func (h *AdminHandler) UpdateUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	var req adminUserRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	u := req.toDomain()
	u.ID = id
	updated, err := h.admin.UpdateUser(c.Request().Context(), u)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, updated)
}

// DeleteUser removes the row with the given id.
//
// @Summary      Delete admin user
// @Tags         admin
// @Param        id  path  int  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /api/admin/users/{id} [delete]
func (h *AdminHandler) DeleteUser(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return err
	}
	if err := h.admin.DeleteUser(c.Request().Context(), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Transactions filters the ledger by explicit dates or a quick range.
//
// @Summary      Transactions
// @Tags         admin
// @Produce      json
// @Param        from   query     string  false  "From date (YYYY-MM-DD)"
// @Param        to     query     string  false  "To date (YYYY-MM-DD)"
// @Param        range  query     string  false  "Quick range"  Enums(today, yesterday, last_week, last_month, last_365, last_fiscal_year)
// @Success      200    {object}  transactionsResponse
// @Failure      422    {object}  errorResponse
// @Router       /api/admin/transactions [get]
func (h *AdminHandler) Transactions(c echo.Context) error {
	var q transactionsQuery
	if err := bindAndValidate(c, &q); err != nil {
		return err
	}
	page, err := h.admin.Transactions(c.Request().Context(), ports.TransactionQuery{
		From:  q.From,
		To:    q.To,
		Range: domain.QuickRange(q.Range),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, transactionsResponse{
		Range:        page.Range,
		Transactions: page.Transactions,
	})
}

func pathID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid user id")
	}
	return id, nil
}
