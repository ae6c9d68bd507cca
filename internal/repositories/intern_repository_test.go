package repositories

import (
	"testing"

	"internhub_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

// TestAppliedForAppend_AtomicConcat - id вакансии дописывается одним
// jsonb-конкатом на стороне базы; параллельный отклик того же аккаунта
// не может затереть чужую запись, как при read-modify-write массива в Go.
func TestAppliedForAppend_AtomicConcat(t *testing.T) {
	t.Parallel()

	db := newDryRunDB(t)

	stmt := db.Model(&models.Intern{}).
		Where("id = ?", "intern-1").
		Update("applied_for", appliedForAppendExpr("job-42")).Statement

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "COALESCE(applied_for, '[]'::jsonb) ||")
	assert.Contains(t, stmt.Vars, `["job-42"]`)
}

// TestAppliedForAppendExpr_NullArray - NULL в applied_for трактуется как
// пустой массив, конкат не теряет первый отклик
func TestAppliedForAppendExpr_NullArray(t *testing.T) {
	t.Parallel()

	expr := appliedForAppendExpr("job-1")
	assert.Contains(t, expr.SQL, "COALESCE(applied_for, '[]'::jsonb)")
	assert.Equal(t, []interface{}{`["job-1"]`}, expr.Vars)
}
