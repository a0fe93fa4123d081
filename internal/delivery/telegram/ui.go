package telegram

import (
	"strconv"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/aliskhannn/fawazir-bot/internal/domain/entities"
	"github.com/aliskhannn/fawazir-bot/internal/service"
)

const (
	levelsPerRow  = 4
	levelsPerPage = 20
)

var optionLetters = [entities.OptionsPerRiddle]string{"أ", "ب", "ج", "د"}

func totalLevelPages() int {
	return (entities.TotalLevels + levelsPerPage - 1) / levelsPerPage
}

// currentLevelPage returns the page holding the highest unlocked level.
func currentLevelPage(completed entities.CompletedLevels) int {
	highest := 1
	for n := entities.TotalLevels; n >= 1; n-- {
		if completed.IsUnlocked(n) {
			highest = n
			break
		}
	}
	return (highest - 1) / levelsPerPage
}

func clampPage(page int) int {
	if page < 0 {
		return 0
	}
	if last := totalLevelPages() - 1; page > last {
		return last
	}
	return page
}

// buildMenuKeyboard builds keyboard for the main menu.
func buildMenuKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("▶️ ابدأ اللعب", buildStartCallback()),
		),
	)
}

// buildLevelsKeyboard builds one page of the level map with pagination.
func buildLevelsKeyboard(completed entities.CompletedLevels, page int) tgbotapi.InlineKeyboardMarkup {
	page = clampPage(page)
	first := page*levelsPerPage + 1
	last := min(first+levelsPerPage-1, entities.TotalLevels)

	var rows [][]tgbotapi.InlineKeyboardButton
	var row []tgbotapi.InlineKeyboardButton
	for n := first; n <= last; n++ {
		row = append(row, levelButton(entities.LevelView(n, completed)))
		if len(row) == levelsPerRow {
			rows = append(rows, row)
			row = nil
		}
	}
	if len(row) > 0 {
		rows = append(rows, row)
	}

	var nav []tgbotapi.InlineKeyboardButton
	if page > 0 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("◀️ السابق", buildPageCallback(page-1)))
	}
	if page < totalLevelPages()-1 {
		nav = append(nav, tgbotapi.NewInlineKeyboardButtonData("التالي ▶️", buildPageCallback(page+1)))
	}
	if len(nav) > 0 {
		rows = append(rows, nav)
	}

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

func levelButton(l entities.Level) tgbotapi.InlineKeyboardButton {
	switch {
	case !l.Unlocked:
		return tgbotapi.NewInlineKeyboardButtonData("🔒", buildLockedCallback())
	case l.Completed:
		return tgbotapi.NewInlineKeyboardButtonData("⭐ "+strconv.Itoa(l.Number), buildLevelCallback(l.Number))
	default:
		return tgbotapi.NewInlineKeyboardButtonData(strconv.Itoa(l.Number), buildLevelCallback(l.Number))
	}
}

// buildLoadingKeyboard builds keyboard shown while riddles are generated.
func buildLoadingKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🗺 قائمة المراحل", buildListCallback()),
		),
	)
}

// buildAnswerKeyboard builds keyboard for the current question.
// While feedback is pending the chosen option is marked.
func buildAnswerKeyboard(session *entities.QuizSession) tgbotapi.InlineKeyboardMarkup {
	riddle := session.Current()

	var rows [][]tgbotapi.InlineKeyboardButton
	for i, option := range riddle.Options {
		label := optionLetters[i] + ") " + option
		if fb := session.Feedback; fb != nil && fb.Index == i {
			if fb.Correct {
				label = "✅ " + label
			} else {
				label = "❌ " + label
			}
		}
		button := tgbotapi.NewInlineKeyboardButtonData(label, buildAnswerCallback(session.CurrentIndex, i))
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(button))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🏠 قائمة المراحل", buildListCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildResultKeyboard builds keyboard for the result screen.
func buildResultKeyboard(result *entities.LevelResult) tgbotapi.InlineKeyboardMarkup {
	var rows [][]tgbotapi.InlineKeyboardButton

	switch {
	case result.HasNextLevel():
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("المرحلة التالية ⬅️", buildNextCallback()),
		))
	case !result.Passed:
		rows = append(rows, tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("🔄 حاول مرة أخرى", buildRetryCallback()),
		))
	}

	rows = append(rows, tgbotapi.NewInlineKeyboardRow(
		tgbotapi.NewInlineKeyboardButtonData("🗺 قائمة المراحل", buildListCallback()),
	))

	return tgbotapi.NewInlineKeyboardMarkup(rows...)
}

// buildScreenKeyboard picks the keyboard of a snapshot's screen.
func buildScreenKeyboard(snap service.Snapshot) *tgbotapi.InlineKeyboardMarkup {
	var kb tgbotapi.InlineKeyboardMarkup

	switch snap.Screen {
	case entities.ScreenMenu:
		kb = buildMenuKeyboard()
	case entities.ScreenLevelSelect:
		kb = buildLevelsKeyboard(snap.Completed, currentLevelPage(snap.Completed))
	case entities.ScreenLoading:
		kb = buildLoadingKeyboard()
	case entities.ScreenGame:
		if snap.Session == nil {
			return nil
		}
		kb = buildAnswerKeyboard(snap.Session)
	case entities.ScreenResult:
		if snap.Result == nil {
			return nil
		}
		kb = buildResultKeyboard(snap.Result)
	default:
		return nil
	}

	return &kb
}
