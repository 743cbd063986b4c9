// Package budget tracks trip expenses per user and summarises spending
// against the trip budget.
package budget

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"dreamtrip/db"
	"dreamtrip/models"
	"dreamtrip/trip"
	"dreamtrip/utils"

	"github.com/julienschmidt/httprouter"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validCategories = map[string]bool{
	"accommodation": true,
	"food":          true,
	"transport":     true,
	"activity":      true,
	"shopping":      true,
	"other":         true,
}

// Summary is the spending overview for the budget page.
type Summary struct {
	TotalBudget    float64            `json:"totalBudget"`
	TotalSpent     float64            `json:"totalSpent"`
	Remaining      float64            `json:"remaining"`
	SpentPercent   float64            `json:"spentPercentage"`
	Status         string             `json:"status"`
	CategoryTotals map[string]float64 `json:"categoryTotals"`
}

// Summarize folds the expense list against the trip budget. Status is
// "over" above 100% spent, "warning" above 80%, otherwise "good".
func Summarize(totalBudget float64, expenses []models.Expense) Summary {
	summary := Summary{
		TotalBudget:    totalBudget,
		CategoryTotals: make(map[string]float64),
	}
	for _, expense := range expenses {
		summary.TotalSpent += expense.Amount
		summary.CategoryTotals[expense.Category] += expense.Amount
	}
	summary.Remaining = totalBudget - summary.TotalSpent

	if totalBudget > 0 {
		summary.SpentPercent = summary.TotalSpent / totalBudget * 100
	}
	switch {
	case summary.SpentPercent > 100:
		summary.Status = "over"
	case summary.SpentPercent > 80:
		summary.Status = "warning"
	default:
		summary.Status = "good"
	}
	return summary
}

func listExpenses(ctx context.Context, userID string) ([]models.Expense, error) {
	opts := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := db.ExpensesCollection.Find(ctx, bson.M{"userid": userID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var expenses []models.Expense
	for cursor.Next(ctx) {
		var expense models.Expense
		if err := cursor.Decode(&expense); err == nil {
			expenses = append(expenses, expense)
		}
	}
	return expenses, cursor.Err()
}

// Overview loads the user's expenses and trip budget and folds them into a
// Summary. The PDF export reuses it for its spending section.
func Overview(ctx context.Context, userID string) ([]models.Expense, Summary, error) {
	expenses, err := listExpenses(ctx, userID)
	if err != nil {
		return nil, Summary{}, err
	}
	if expenses == nil {
		expenses = []models.Expense{}
	}

	totalBudget := 0.0
	if tripData, found, err := trip.Load(ctx, userID); err == nil && found {
		totalBudget = tripData.Budget
	}
	return expenses, Summarize(totalBudget, expenses), nil
}

// GET /api/budget
func GetBudget(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	expenses, summary, err := Overview(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch expenses")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.M{
		"expenses": expenses,
		"summary":  summary,
	})
}

// POST /api/budget/expenses
func AddExpense(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	var expense models.Expense
	if err := json.NewDecoder(r.Body).Decode(&expense); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}
	if !validCategories[expense.Category] {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid category")
		return
	}
	if expense.Description == "" || expense.Date == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Description and date are required")
		return
	}
	if expense.Amount <= 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Amount must be positive")
		return
	}
	if _, err := time.Parse("2006-01-02", expense.Date); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Date must be YYYY-MM-DD")
		return
	}
	if expense.Currency == "" {
		expense.Currency = "USD"
	}

	expense.ExpenseID = utils.GetUUID()
	expense.UserID = userID

	if _, err := db.ExpensesCollection.InsertOne(ctx, expense); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to save expense")
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"expense": expense, "ok": true})
}

// DELETE /api/budget/expenses/:expenseid
func DeleteExpense(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithError(w, http.StatusUnauthorized, "Invalid user")
		return
	}

	result, err := db.ExpensesCollection.DeleteOne(ctx, bson.M{
		"expenseid": ps.ByName("expenseid"),
		"userid":    userID,
	})
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to delete expense")
		return
	}
	if result.DeletedCount == 0 {
		utils.RespondWithError(w, http.StatusNotFound, "Expense not found")
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"ok": true})
}
