package conversation

const (
	MsgGreeting = "Assalomu alaykum! Men O'zbek, Arab va Turk tillari bo'yicha tarjimon botman.\n" +
		"Tarjima qilmoqchi bo'lgan matningizni kiriting."

	MsgHelp = "Bot haqida qo'llanma:\n" +
		"1. Tarjima qilmoqchi bo'lgan matningizni kiriting\n" +
		"2. Qaysi tilga tarjima qilishni tanlang (O'zbek, Arab, Turk)\n" +
		"3. Bot sizga tarjima natijasini ko'rsatadi\n\n" +
		"Yangi tarjima boshlash uchun istalgan vaqtda /start buyrug'ini yuboring."

	MsgNotCommand      = "Iltimos, buyruq emas, tarjima qilmoqchi bo'lgan matningizni kiriting."
	MsgChooseLanguage  = "Qaysi tilga tarjima qilishni xohlaysiz?"
	MsgChooseOffered   = "Iltimos, taqdim etilgan tillardan birini tanlang:"
	MsgTranslateFailed = "Tarjima vaqtida xatolik yuz berdi. Iltimos, qayta urinib ko'ring."
	MsgEnterNewText    = "Yangi tarjima uchun matn kiriting:"
	MsgInternalError   = "Xatolik yuz berdi. Iltimos, birozdan so'ng qayta urinib ko'ring."

	msgAlreadyInTarget = "Kiritilgan matn allaqachon %s tilida."
	msgResult          = "📝 Original matn (%s):\n%s\n\n🔄 Tarjima (%s):\n%s"
)

const (
	CommandStart = "/start"
	CommandHelp  = "/help"
)
