package ai

import (
	"fmt"
	"strings"

	"github.com/reomoon/memo/internal/server/models"
)

// TitlePrompt asks for one short title for body.
func TitlePrompt(body string) string {
	return fmt.Sprintf("다음 본문을 바탕으로 간단하고 명확한 제목 1개를 생성해주세요. 제목만 반환하세요:\n\n%s", body)
}

// SummaryPrompt asks for a two or three line summary of body.
func SummaryPrompt(body string) string {
	return fmt.Sprintf("다음 메모를 2-3줄로 요약해주세요:\n\n%s", body)
}

// CategoryPrompt asks for exactly one label of models.Categories for text.
func CategoryPrompt(text string) string {
	return fmt.Sprintf("다음 텍스트를 분석하여 가장 적절한 카테고리 1개를 선택하세요. \n선택지: %s\n\n응답은 \"카테고리명\"만 반환하세요:\n\n%s",
		strings.Join(models.Categories, ", "), text)
}
