package mysql

import (
	"errors"
	"fmt"
	"math"
	"testing"

	mysqldriver "github.com/go-sql-driver/mysql"
	"github.com/jbeshir/article-board/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestPaginationToLimitOffset(t *testing.T) {
	cases := []struct {
		name           string
		page, pageSize int
		limit, offset  int32
	}{
		{name: "first page", page: 1, pageSize: 3, limit: 3, offset: 0},
		{name: "third page", page: 3, pageSize: 3, limit: 3, offset: 6},
		{name: "zero page treated as first", page: 0, pageSize: 3, limit: 3, offset: 0},
		{name: "huge page clamped", page: math.MaxInt32, pageSize: 10, limit: 10, offset: math.MaxInt32},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			limit, offset := paginationToLimitOffset(tc.page, tc.pageSize)
			assert.Equal(t, tc.limit, limit)
			assert.Equal(t, tc.offset, offset)
		})
	}
}

func TestErrorClassification(t *testing.T) {
	dup := fmt.Errorf("wrapped: %w", &mysqldriver.MySQLError{Number: 1062})
	fk := &mysqldriver.MySQLError{Number: 1452}

	assert.True(t, isDuplicateKey(dup))
	assert.False(t, isDuplicateKey(fk))
	assert.True(t, isMissingReference(fk))
	assert.False(t, isMissingReference(errors.New("other")))
	assert.True(t, isDeadlock(&mysqldriver.MySQLError{Number: 1213}))
	assert.True(t, isRegexpSyntax(fmt.Errorf("wrapped: %w", &mysqldriver.MySQLError{Number: 3692})))
	assert.False(t, isRegexpSyntax(&mysqldriver.MySQLError{Number: 3699}))
	assert.False(t, isRegexpSyntax(nil))
}

func TestArticleWriteError(t *testing.T) {
	var verr *domain.ValidationError

	assert.ErrorAs(t, articleWriteError(&mysqldriver.MySQLError{Number: 1062}), &verr)
	assert.Contains(t, verr.Fields, "title")

	assert.ErrorAs(t, articleWriteError(&mysqldriver.MySQLError{Number: 1452}), &verr)
	assert.Contains(t, verr.Fields, "category")

	other := errors.New("boom")
	assert.ErrorIs(t, articleWriteError(other), other)
}

func TestOwnerColumn(t *testing.T) {
	col, err := ownerColumn(domain.VotableKindArticle)
	assert.NoError(t, err)
	assert.Equal(t, "article_id", col)

	col, err = ownerColumn(domain.VotableKindComment)
	assert.NoError(t, err)
	assert.Equal(t, "comment_id", col)

	_, err = ownerColumn("tag")
	assert.Error(t, err)
}
