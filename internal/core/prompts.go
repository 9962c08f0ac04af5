package core

// prompts.go collects the Ukrainian-language prompts and canned replies used
// by the router, booking flow and assistant pipelines.  Keeping them in one
// file makes them easy to tweak without touching the control flow.

const (
	// SystemPromptLegal instructs the model to act as a legal assistant for
	// the firm, answering on the basis of Ukrainian law within a bounded
	// response length.
	SystemPromptLegal = "Ти віртуальний помічник, який має проконсультувати щодо вирішення проблеми на основі закону України і відповідати на будь-які питання щодо цієї юридичної фірми та послуг, які вона надає. Відповідь має вкладатися в 500 токенів."

	// SystemPromptCourt instructs the model to act as a web-search helper
	// that must locate court decision links.
	SystemPromptCourt = "Ти помічник веб пошуку, який має навички пошуку по запиту. Обовязково знайди посилання на судові рішення:"

	// legalPromptFmt wraps a general legal question.  It asks for concrete
	// steps, the documents required, and a single primary link to
	// zakon.rada.gov.ua when one applies.
	legalPromptFmt = "Ось питання клієнта: %s\n\n" +
		"Включіть кроки, які клієнт повинен зробити, та точну кількість документів, які йому потрібні. " +
		"Якщо є відповідний один основний документ на сайті https://zakon.rada.gov.ua, включіть відповідне посилання у вигляді простого посилання. " +
		"Та напиши, що знизу тексту відповіді є кнопки, за допомогою яких можна подивитись відео з каналу Ростислава Кравця та посилання на документ з законом. " +
		"Відповіді повинні бути українською мовою."

	// courtInlinePromptFmt handles a court-decision question asked in a
	// free-text message (no open session).  It demands a registry link and a
	// short answer.
	courtInlinePromptFmt = "Обов'язково знайди посилання судових рішень: %s щоб було зв'язано з сайтом https://reyestr.court.gov.ua\n\n" +
		"Обов'язково знайди та надай посилання на справу з сайту на запит. Коротка відповідь: посилання і декілька слів. " +
		"Відповіді повинні бути українською мовою."

	// courtSessionPromptFmt handles a question submitted through the court
	// decisions menu entry.
	courtSessionPromptFmt = "Знайди посилання на судові рішення: %s щоб було зв'язано з сайтом https://reyestr.court.gov.ua\n\n" +
		"Знайди та надай посилання на справу з сайту на запит. Відповіді повинні бути українською мовою."
)

// Booking wizard prompts, one per field, in fill order.
const (
	PromptName    = "Будь ласка, вкажіть ваше повне ім'я:"
	PromptSurname = "Дякую! Будь ласка, вкажіть ваше прізвище:"
	PromptDate    = "Дякую! Будь ласка, вкажіть бажану дату (РРРР-ММ-ДД):"
	PromptTime    = "Чудово! Тепер вкажіть бажаний час (ГГ:ХХ):"
	PromptContact = "І останнє, будь ласка, вкажіть ваш контактний номер:"
)

// Menu entry texts matched verbatim by the router.
const (
	MenuConsultation = "Отримати консультацію"
	MenuBooking      = "Записатись на консультацію"
	MenuSpecialist   = "Отримати консультацію у спеціаліста"
	MenuCourt        = "Судові рішення"
)

const (
	// ReplyConsultation acknowledges the consultation menu entry and asks
	// for the question.
	ReplyConsultation = "Ви обрали 'Отримати консультацію'. Будь ласка, опишіть ваше питання."

	// ReplySpecialist acknowledges the specialist menu entry.
	ReplySpecialist = "Ви обрали 'Отримати консультацію у спеціаліста'. Ми зв'яжемося з вами найближчим часом."

	// ReplyCourtEntry opens a court-decision session and asks for the query.
	ReplyCourtEntry = "Будь ласка, напишіть ваше питання для пошуку судових рішень."

	// ReplyVoice is the placeholder for voice messages; transcription is
	// not implemented.
	ReplyVoice = "Вибачте, голосові повідомлення поки що не підтримуються. Будь ласка, напишіть ваше питання текстом."

	// ApologyMessage replaces the answer whenever the model call fails.
	ApologyMessage = "Вибачте, при генерації відповіді сталася помилка."
)

// Labels for the links attached to enriched replies.
const (
	LabelWatchVideo   = "Подивитись відео"
	LabelOpenDocument = "Відкрити документ"
)

// confirmationFmt renders the collected booking fields back to the user.
const confirmationFmt = "Дякую за надані дані!\n\n" +
	"Ім'я: %s\n" +
	"Прізвище: %s\n" +
	"Дата: %s\n" +
	"Час: %s\n" +
	"Контакт: %s\n\n" +
	"Ваш прийом записано!"
