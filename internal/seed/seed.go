package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/auth"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/domain"
	"github.com/Ammu12wqasr42/Manufacturing-Dashboard/internal/line"
)

// demoPassword is shared by every demo account. Seeding is for local
// development and demos only, never production data.
const demoPassword = "password123"

type demoUser struct {
	name  string
	email string
	role  string
}

var demoUsers = []demoUser{
	{name: "John Operator", email: "operator@example.com", role: domain.RoleOperator},
	{name: "Sarah Manager", email: "manager@example.com", role: domain.RoleManager},
	{name: "Admin User", email: "admin@example.com", role: domain.RoleAdmin},
}

func strPtr(s string) *string { return &s }

func intPtr(i int) *int { return &i }

func f64Ptr(f float64) *float64 { return &f }

var demoLines = []line.ProductionLine{
	{LineNo: "BE-01", SapLocation: "BLR-001", Description: strPtr("Assembly Line 1"), StandardManpower: intPtr(5), TargetUPPH: f64Ptr(12.5), IsActive: true},
	{LineNo: "BE-02", SapLocation: "BLR-002", Description: strPtr("Assembly Line 2"), StandardManpower: intPtr(6), TargetUPPH: f64Ptr(11.8), IsActive: true},
	{LineNo: "BE-03", SapLocation: "BLR-003", Description: strPtr("Packaging Line"), StandardManpower: intPtr(4), TargetUPPH: f64Ptr(15.2), IsActive: true},
	{LineNo: "BE-04", SapLocation: "BLR-004", Description: strPtr("Quality Check"), StandardManpower: intPtr(3), TargetUPPH: f64Ptr(20.0), IsActive: true},
}

// Run inserts the demo accounts and production lines. Existing rows are kept:
// duplicate emails and line numbers are skipped, so Run is safe to call on
// every mock-mode startup and repeatedly from the seed command.
func Run(ctx context.Context, users auth.Repository, lines line.Repository, logger *zap.Logger) error {
	for _, du := range demoUsers {
		hashed, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		user := &auth.User{
			ID:       uuid.New(),
			Name:     du.name,
			Email:    strings.ToLower(du.email),
			Password: string(hashed),
			Role:     du.role,
		}
		if err := users.Create(ctx, user); err != nil {
			if isDuplicate(err) {
				continue
			}
			return err
		}
		logger.Info("seeded demo user", zap.String("email", user.Email), zap.String("role", user.Role))
	}

	for _, dl := range demoLines {
		l := dl
		l.ID = uuid.New()
		if err := lines.Create(ctx, &l); err != nil {
			if isDuplicate(err) {
				continue
			}
			return err
		}
		logger.Info("seeded production line", zap.String("line_no", l.LineNo), zap.String("sap_location", l.SapLocation))
	}

	return nil
}

func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}
