// messages.go contains message templates and screen texts.

package telegram

import (
	"fmt"
	"strings"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
	"github.com/aliskhannn/fawazir-bot/internal/service"
)

const (
	msgInternalError  = "حدث خطأ ما، حاول مرة أخرى لاحقاً."
	msgUnknownCommand = "أمر غير معروف. الأوامر المتاحة:\n\n/start - الشاشة الحالية\n/levels - قائمة المراحل\n/help - المساعدة"
	msgLevelLocked    = "🔒 هذه المرحلة مقفلة، أكمل المرحلة السابقة أولاً"
	msgStaleButton    = "انتهت صلاحية هذا الزر"
	msgHelp           = "🧠 <b>فوازير الذكاء</b>\n\n" +
		"كل مرحلة فيها 10 ألغاز، ولكل لغز 4 خيارات.\n" +
		"أجب عن 7 ألغاز على الأقل بشكل صحيح لتجتاز المرحلة وتفتح التي تليها.\n\n" +
		"/start - الشاشة الحالية\n/levels - قائمة المراحل"
)

func msgCelebrate(level int) string {
	if level >= entities.TotalLevels {
		return "🎉🏆 مبروك! أتممت جميع المراحل الـ 500!"
	}
	return fmt.Sprintf("🎉 مبروك! اجتزت المرحلة %d وفتحت المرحلة %d", level, level+1)
}

// renderScreen builds the text of a snapshot's screen.
func renderScreen(snap service.Snapshot) string {
	switch snap.Screen {
	case entities.ScreenMenu:
		return renderMenu(snap.Completed)
	case entities.ScreenLevelSelect:
		return renderLevelSelect(snap.Completed, currentLevelPage(snap.Completed))
	case entities.ScreenLoading:
		return renderLoading(snap.Level)
	case entities.ScreenGame:
		if snap.Session == nil {
			return renderLoading(snap.Level)
		}
		return renderQuestion(snap.Session)
	case entities.ScreenResult:
		if snap.Result == nil {
			return renderMenu(snap.Completed)
		}
		return renderResult(*snap.Result)
	default:
		return msgInternalError
	}
}

func renderMenu(completed entities.CompletedLevels) string {
	var sb strings.Builder

	sb.WriteString("🧠 <b>فوازير الذكاء</b>\n\n")
	sb.WriteString("اختبر ذكاءك مع 500 مرحلة من الألغاز الشيقة والمتدرجة في الصعوبة.\n\n")
	sb.WriteString(fmt.Sprintf("%s⭐ المراحل المكتملة: <b>%d</b>\n", rlm, completed.Len()))
	sb.WriteString(fmt.Sprintf("%s🗺 إجمالي المراحل: <b>%d</b>", rlm, entities.TotalLevels))

	return sb.String()
}

func renderLevelSelect(completed entities.CompletedLevels, page int) string {
	page = clampPage(page)
	first := page*levelsPerPage + 1
	last := min(first+levelsPerPage-1, entities.TotalLevels)

	return fmt.Sprintf(
		"🗺 <b>خريطة المراحل</b>\n\n%sالمراحل %d - %d (صفحة %d من %d)\n%s⭐ المكتملة: %d من %d\n\n🔒 مقفلة  ⭐ مكتملة",
		rlm, first, last, page+1, totalLevelPages(),
		rlm, completed.Len(), entities.TotalLevels,
	)
}

func renderLoading(level int) string {
	return fmt.Sprintf(
		"⏳ <b>جاري إنشاء تحديات المرحلة %d...</b>\n\nيتم تحضير تجربة ذكاء فريدة لك",
		level,
	)
}

func renderQuestion(session *entities.QuizSession) string {
	riddle := session.Current()
	current := session.CurrentIndex + 1
	difficulty := entities.DifficultyForLevel(session.Level)

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s<b>المرحلة %d</b> · %s\n", rlm, session.Level, difficulty.Label()))
	sb.WriteString(fmt.Sprintf("%s%s %d / %d\n", rlm, buildProgressBar(current, entities.RiddlesPerLevel, entities.RiddlesPerLevel), current, entities.RiddlesPerLevel))
	sb.WriteString(fmt.Sprintf("%s✅ النقاط: %d\n\n", rlm, session.Score))
	sb.WriteString("❓ " + bold(riddle.Question) + "\n\n")

	for i, option := range riddle.Options {
		sb.WriteString(fmt.Sprintf("%s) %s\n", optionLetters[i], esc(option)))
	}

	if fb := session.Feedback; fb != nil {
		sb.WriteString("\n")
		sb.WriteString(formatAnswerFeedback(fb.Correct, riddle))
	}

	return sb.String()
}

func formatAnswerFeedback(correct bool, riddle entities.Riddle) string {
	var sb strings.Builder

	if correct {
		sb.WriteString("✅ <b>إجابة صحيحة!</b>")
	} else {
		sb.WriteString("❌ <b>إجابة خاطئة</b>\n")
		sb.WriteString(fmt.Sprintf("الإجابة الصحيحة: %s) %s",
			optionLetters[riddle.CorrectAnswer], esc(riddle.Options[riddle.CorrectAnswer])))
	}

	if riddle.Explanation != "" {
		sb.WriteString("\n💡 " + esc(riddle.Explanation))
	}

	return sb.String()
}

func renderResult(result entities.LevelResult) string {
	var sb strings.Builder

	if result.Passed {
		sb.WriteString("🏆 <b>أحسنت! تم اجتياز المرحلة</b>\n\n")
	} else {
		sb.WriteString("😔 <b>للأسف! لم تنجح هذه المرة</b>\n\n")
	}

	sb.WriteString(fmt.Sprintf("%sالمرحلة %d\n", rlm, result.Level))
	sb.WriteString(fmt.Sprintf("%sنتيجتك: <b>%d من %d</b>\n", rlm, result.Score, result.Total))
	sb.WriteString(buildProgressBar(result.Score, result.Total, entities.RiddlesPerLevel))

	switch {
	case !result.Passed:
		sb.WriteString(fmt.Sprintf("\n\n%sتحتاج %d إجابات صحيحة على الأقل للنجاح.", rlm, entities.PassThreshold))
	case !result.HasNextLevel():
		sb.WriteString("\n\n🎉 أتممت جميع المراحل!")
	}

	return sb.String()
}
