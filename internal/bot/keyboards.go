package bot

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

const (
	btnSkip   = "⏭️ Skip"
	btnCancel = "⏪ Cancel"

	menuLabelLists   = "📋 My checklists"
	menuLabelNewList = "➕ New checklist"
	menuLabelProfile = "👤 Profile"
	menuLabelHelp    = "ℹ️ Help"
)

// Callback data prefixes.
const (
	cbOpenPrefix    = "open:"
	cbTogglePrefix  = "toggle:"
	cbTaskPrefix    = "task:"
	cbLikePrefix    = "like:"
	cbCommentPrefix = "comment:"
	cbAddTaskPrefix = "addtask:"
	cbSharePrefix   = "share:"
	cbArchivePrefix = "archive:"
	cbEditBio       = "editbio"
	cbEditAvatar    = "editavatar"
	cbPending       = "pending"
)

func mainMenuKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelLists),
			tgbotapi.NewKeyboardButton(menuLabelNewList),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(menuLabelProfile),
			tgbotapi.NewKeyboardButton(menuLabelHelp),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = false
	return kb
}

func cancelKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}

func skipKeyboard() tgbotapi.ReplyKeyboardMarkup {
	kb := tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnSkip),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(btnCancel),
		),
	)
	kb.ResizeKeyboard = true
	kb.OneTimeKeyboard = true
	return kb
}
