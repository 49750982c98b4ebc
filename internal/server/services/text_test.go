package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/reomoon/memo/internal/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockCompleter struct {
	mock.Mock
}

func (m *mockCompleter) Complete(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

func promptWith(prefix, input string) any {
	return mock.MatchedBy(func(p string) bool {
		return strings.HasPrefix(p, prefix) && strings.HasSuffix(p, "\n\n"+input)
	})
}

func TestGenerateTitle(t *testing.T) {
	m := &mockCompleter{}
	m.On("Complete", mock.Anything, promptWith("다음 본문을 바탕으로", "body text")).Return("  회의록  \n", nil)

	got, err := NewTextService(m, nil).GenerateTitle(context.Background(), "body text")
	require.NoError(t, err)
	assert.Equal(t, "회의록", got)
	m.AssertExpectations(t)
}

func TestSummarize(t *testing.T) {
	m := &mockCompleter{}
	m.On("Complete", mock.Anything, promptWith("다음 메모를 2-3줄로", "long memo")).Return("요약", nil)

	got, err := NewTextService(m, nil).Summarize(context.Background(), "long memo")
	require.NoError(t, err)
	assert.Equal(t, "요약", got)
}

func TestClassifyCategory(t *testing.T) {
	m := &mockCompleter{}
	m.On("Complete", mock.Anything, promptWith("다음 텍스트를 분석하여", "buy milk")).Return(" 쇼핑 ", nil).Once()
	m.On("Complete", mock.Anything, promptWith("다음 텍스트를 분석하여", "???")).Return("   ", nil).Once()

	s := NewTextService(m, nil)

	got, err := s.ClassifyCategory(context.Background(), "buy milk")
	require.NoError(t, err)
	assert.Equal(t, "쇼핑", got)

	got, err = s.ClassifyCategory(context.Background(), "???")
	require.NoError(t, err)
	assert.Equal(t, "기타", got)
}

func TestText_Errors(t *testing.T) {
	ctx := context.Background()

	m := &mockCompleter{}
	s := NewTextService(m, nil)
	_, err := s.GenerateTitle(ctx, "  ")
	assert.ErrorIs(t, err, common.ErrorValidation)
	_, err = s.ClassifyCategory(ctx, "")
	assert.ErrorIs(t, err, common.ErrorValidation)
	m.AssertNotCalled(t, "Complete", mock.Anything, mock.Anything)

	unconfigured := NewTextService(nil, nil)
	_, err = unconfigured.Summarize(ctx, "x")
	assert.ErrorIs(t, err, common.ErrorNotConfigured)
	_, err = unconfigured.Summarize(ctx, "")
	assert.ErrorIs(t, err, common.ErrorValidation, "input is checked before the key")

	m.On("Complete", mock.Anything, mock.Anything).Return("", errors.New("quota"))
	_, err = s.Summarize(ctx, "x")
	assert.ErrorIs(t, err, common.ErrorUpstream)
	assert.Contains(t, err.Error(), "quota")
}
