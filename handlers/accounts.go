package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"mime"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/devops-capstone/account-service/models"
)

const accountSelectQuery = `SELECT id, name, email, address, phone_number, date_joined FROM accounts`

func scanAccount(scanner interface{ Scan(...any) error }) (models.Account, error) {
	var a models.Account
	err := scanner.Scan(&a.ID, &a.Name, &a.Email, &a.Address, &a.PhoneNumber, &a.DateJoined)
	return a, err
}

// ListAccounts lists all accounts
// @Summary      List accounts
// @Description  Get a list of all accounts, optionally filtered by name.
// @Tags         accounts
// @Produce      json
// @Param        name  query     string  false  "Filter by name"
// @Success      200  {array}  models.Account
// @Router       /accounts [get]
// @Security     BasicAuth
func ListAccounts(w http.ResponseWriter, r *http.Request) {
	name := r.URL.Query().Get("name")
	query := accountSelectQuery
	var args []any
	if name != "" {
		query += " WHERE name LIKE $1"
		args = append(args, "%"+name+"%")
	}
	rows, err := DB.Query(query, args...)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	defer rows.Close()

	var accounts []models.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			writeError(w, http.StatusInternalServerError, err.Error())
			return
		}
		accounts = append(accounts, a)
	}
	if accounts == nil {
		accounts = []models.Account{}
	}
	writeJSON(w, http.StatusOK, accounts)
}

// GetAccount retrieves a single account by ID
// @Summary      Get account
// @Description  Get details of a specific account.
// @Tags         accounts
// @Produce      json
// @Param        id   path      int  true  "Account ID"
// @Success      200  {object}  models.Account
// @Failure      404  {object}  ErrorResponse
// @Router       /accounts/{id} [get]
// @Security     BasicAuth
func GetAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	a, err := scanAccount(DB.QueryRow(accountSelectQuery+" WHERE id = $1", id))
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("account with id %d was not found", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// CreateAccount creates a new account
// @Summary      Create account
// @Description  Create a new account. date_joined defaults to today when omitted.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        account  body      models.AccountInput  true  "Account contents"
// @Success      201      {object}  models.Account
// @Failure      400      {object}  ErrorResponse
// @Failure      415      {object}  ErrorResponse
// @Router       /accounts [post]
// @Security     BasicAuth
func CreateAccount(w http.ResponseWriter, r *http.Request) {
	mediaType, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
	if err != nil || mediaType != "application/json" {
		writeError(w, http.StatusUnsupportedMediaType, "Content-Type must be application/json")
		return
	}

	var input models.AccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	dateJoined := models.Today()
	if input.DateJoined != nil {
		dateJoined = *input.DateJoined
	}

	var id int
	err = DB.QueryRow(
		"INSERT INTO accounts (name, email, address, phone_number, date_joined) VALUES ($1, $2, $3, $4, $5) RETURNING id",
		input.Name, input.Email, input.Address, input.PhoneNumber, dateJoined,
	).Scan(&id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	a, err := scanAccount(DB.QueryRow(accountSelectQuery+" WHERE id = $1", id))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch created account: "+err.Error())
		return
	}
	w.Header().Set("Location", fmt.Sprintf("/accounts/%d", id))
	writeJSON(w, http.StatusCreated, a)
}

// UpdateAccount updates an existing account
// @Summary      Update account
// @Description  Replace the mutable fields of an existing account.
// @Tags         accounts
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Account ID"
// @Param        account  body      models.AccountInput  true  "Updated account contents"
// @Success      200      {object}  models.Account
// @Failure      400      {object}  ErrorResponse
// @Failure      404      {object}  ErrorResponse
// @Router       /accounts/{id} [put]
// @Security     BasicAuth
func UpdateAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))

	// Existence is checked before the body so an unknown id is always 404.
	var existing int
	err := DB.QueryRow("SELECT id FROM accounts WHERE id = $1", id).Scan(&existing)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, fmt.Sprintf("account with id %d was not found", id))
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	var input models.AccountInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON")
		return
	}
	if msg := input.Validate(); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	dateJoined := models.Today()
	if input.DateJoined != nil {
		dateJoined = *input.DateJoined
	}

	_, err = DB.Exec(
		"UPDATE accounts SET name = $1, email = $2, address = $3, phone_number = $4, date_joined = $5 WHERE id = $6",
		input.Name, input.Email, input.Address, input.PhoneNumber, dateJoined, id,
	)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	a, err := scanAccount(DB.QueryRow(accountSelectQuery+" WHERE id = $1", id))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to re-fetch updated account: "+err.Error())
		return
	}
	writeJSON(w, http.StatusOK, a)
}

// DeleteAccount deletes an account
// @Summary      Delete account
// @Description  Remove an account. Deleting an unknown id is a no-op.
// @Tags         accounts
// @Param        id   path  int  true  "Account ID"
// @Success      204  "No Content"
// @Router       /accounts/{id} [delete]
// @Security     BasicAuth
func DeleteAccount(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.Atoi(chi.URLParam(r, "id"))
	// Idempotent: a missing row is still a successful delete.
	if _, err := DB.Exec("DELETE FROM accounts WHERE id = $1", id); err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
