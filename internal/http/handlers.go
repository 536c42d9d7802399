package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"fintrack/internal/core"
	"fintrack/internal/log"
)

func (s *Server) handleCreateTransaction(w http.ResponseWriter, r *http.Request) {
	var req createTransactionRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}

	amount, err := core.ParseAmount("amount", req.Amount)
	if err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}
	date, err := parseDate("date", req.Date)
	if err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}

	txn, err := s.tracker(r).AddTransaction(r.Context(), core.TransactionType(req.Type), amount, req.Description, req.Category, date)
	if err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, txn)
}

func (s *Server) handleListTransactions(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.tracker(r).Transactions())
}

func (s *Server) handleCreateBudget(w http.ResponseWriter, r *http.Request) {
	var req createBudgetRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}

	limit, err := core.ParseAmount("amount", req.Limit)
	if err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}

	b, err := s.tracker(r).AddBudget(r.Context(), req.Category, limit, core.BudgetPeriod(req.Period))
	if err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, b)
}

func (s *Server) handleListBudgets(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.tracker(r).BudgetStatuses())
}

func (s *Server) handleCreateGoal(w http.ResponseWriter, r *http.Request) {
	var req createGoalRequest
	if err := decodeJSON(r, &req); err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}

	target, err := core.ParseAmount("target_amount", req.Target)
	if err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}
	deadline, err := parseDate("deadline", req.Deadline)
	if err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}

	g, err := s.tracker(r).AddGoal(r.Context(), req.Title, target, deadline, req.Collaborators)
	if err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusCreated, g)
}

func (s *Server) handleListGoals(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.tracker(r).GoalStatuses())
}

func (s *Server) handleListNotifications(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.tracker(r).Notifications())
}

// handleMarkNotificationRead always responds 204: marking is a no-op for
// unknown or unparseable IDs, matching the idempotent semantics of the
// underlying operation.
func (s *Server) handleMarkNotificationRead(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	if id, err := uuid.Parse(raw); err == nil {
		s.tracker(r).MarkNotificationRead(id)
	} else {
		log.FromContext(r.Context()).DebugContext(r.Context(), "ignoring unparseable notification id",
			log.FieldNotificationID, raw)
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, s.tracker(r).Dashboard())
}

func (s *Server) handleReport(w http.ResponseWriter, r *http.Request) {
	period, err := core.ParsePeriod(r.URL.Query().Get("period"))
	if err != nil {
		writeRequestError(r.Context(), w, err)
		return
	}
	writeJSON(r.Context(), w, http.StatusOK, s.tracker(r).Report(period))
}
