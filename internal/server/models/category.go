package models

// Categories is the closed label set offered to the classifier, in prompt
// order.
var Categories = []string{"일상", "업무", "아이디어", "학습", "건강", "금융", "취미", "쇼핑", "기타"}

// DefaultCategory is returned when the model answers with empty text.
const DefaultCategory = "기타"
