package service

import (
	"fmt"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
)

const riddlesSystemPrompt = `أنت صانع ألغاز محترف تكتب باللغة العربية الفصحى.
أعد دائماً JSON صالحاً فقط، دون أي نص خارج JSON.
الصيغة المطلوبة: مصفوفة من الكائنات، كل كائن بهذا الشكل:
{
  "id": "معرف فريد",
  "question": "نص اللغز",
  "options": ["خيار", "خيار", "خيار", "خيار"],
  "correctAnswer": 0,
  "explanation": "شرح قصير للإجابة الصحيحة"
}
القيمة correctAnswer هي رقم الخيار الصحيح من 0 إلى 3.`

// BuildRiddlesPrompt returns the user prompt that asks for the riddles of a level.
func BuildRiddlesPrompt(level int) string {
	difficulty := entities.DifficultyForLevel(level)

	return fmt.Sprintf(
		"قم بإنشاء %d ألغاز عربية للمرحلة رقم %d.\n"+
			"المستوى المطلوب: %s.\n"+
			"يجب أن تكون الألغاز متنوعة (لغوية، منطقية، ذكاء).\n"+
			"كل لغز يجب أن يحتوي على السؤال، %d اختيارات، ورقم الاختيار الصحيح (0-%d)، وشرح قصير.",
		entities.RiddlesPerLevel,
		level,
		difficulty.PromptHint(),
		entities.OptionsPerRiddle,
		entities.OptionsPerRiddle-1,
	)
}

// RiddlesSystemPrompt returns the system instruction shared by all riddle requests.
func RiddlesSystemPrompt() string {
	return riddlesSystemPrompt
}
