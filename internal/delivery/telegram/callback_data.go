package telegram

import (
	"strconv"
	"strings"
)

// Callback action constants.
const (
	actionStart  = "start"
	actionLevel  = "lvl"
	actionPage   = "page"
	actionAnswer = "ans"
	actionList   = "list"
	actionRetry  = "retry"
	actionNext   = "next"
	actionLocked = "locked"
)

// callbackData represents structured callback data.
type callbackData struct {
	Action string
	Params []string
	Raw    string
}

// encode creates callback string.
func (cd callbackData) encode() string {
	if len(cd.Params) == 0 {
		return cd.Action
	}
	return cd.Action + ":" + strings.Join(cd.Params, ":")
}

// decodeCallback parses callback data string.
func decodeCallback(data string) callbackData {
	parts := strings.Split(data, ":")
	if len(parts) == 0 {
		return callbackData{Raw: data}
	}

	return callbackData{
		Action: parts[0],
		Params: parts[1:],
		Raw:    data,
	}
}

// intParam returns the i-th parameter as an integer.
func (cd callbackData) intParam(i int) (int, bool) {
	if i < 0 || i >= len(cd.Params) {
		return 0, false
	}
	n, err := strconv.Atoi(cd.Params[i])
	if err != nil {
		return 0, false
	}
	return n, true
}

func buildStartCallback() string {
	return actionStart
}

// buildLevelCallback builds callback data for starting a level.
func buildLevelCallback(level int) string {
	return callbackData{
		Action: actionLevel,
		Params: []string{strconv.Itoa(level)},
	}.encode()
}

// buildPageCallback builds callback data for a page of the level map.
func buildPageCallback(page int) string {
	return callbackData{
		Action: actionPage,
		Params: []string{strconv.Itoa(page)},
	}.encode()
}

// buildAnswerCallback builds callback data for answering a question.
// The question index lets stale keyboards be recognised.
func buildAnswerCallback(questionIndex, option int) string {
	return callbackData{
		Action: actionAnswer,
		Params: []string{strconv.Itoa(questionIndex), strconv.Itoa(option)},
	}.encode()
}

func buildListCallback() string {
	return actionList
}

func buildRetryCallback() string {
	return actionRetry
}

func buildNextCallback() string {
	return actionNext
}

func buildLockedCallback() string {
	return actionLocked
}
