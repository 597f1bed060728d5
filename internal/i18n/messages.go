package i18n

var english = map[string]string{
	"appTitle":     "House of Oud",
	"tagline":      "Rare agarwood, perfumes and incense",
	"navHome":      "Home",
	"navCart":      "Cart",
	"navConcierge": "Scent Concierge",
	"navLanguage":  "العربية",
	"categories":   "Collections",
	"featured":     "Featured",
	"discover":     "Discover",
	"noProducts":   "No products in this collection yet.",

	"category_pure_oud":       "Pure Oud",
	"category_perfume":        "Perfumes",
	"category_bakhoor":        "Bakhoor",
	"category_powder":         "Powders",
	"category_gift_set":       "Gift Sets",
	"category_accessory":      "Accessories",
	"category_premium":        "Premium",
	"category_perfume_oil":    "Perfume Oils",
	"category_mist":           "Mists",
	"category_burner":         "Burners",
	"category_home_accessory": "Home Accessories",

	"backToCollection": "Back to collection",
	"backToHome":       "Back to home",
	"addToCart":        "Add to cart",
	"scentProfile":     "Scent profile",
	"quantity":         "Quantity",

	"shoppingCart":      "Shopping Cart",
	"cartEmpty":         "Your cart is empty.",
	"continueShopping":  "Continue shopping",
	"orderSummary":      "Order summary",
	"subtotal":          "Subtotal",
	"shipping":          "Shipping",
	"free":              "Free",
	"total":             "Total",
	"proceedToCheckout": "Proceed to checkout",
	"remove":            "Remove",

	"aiScentConcierge":    "AI Scent Concierge",
	"conciergeSubtitle":   "Tell us about the moment and we will find the oud for it.",
	"whatsTheOccasion":    "What's the occasion?",
	"whatMood":            "What mood are you after?",
	"whichScentFamilies":  "Which scent families do you love?",
	"findMyScent":         "Find my scent",
	"analyzing":           "Analyzing...",
	"yourRecommendation":  "Your recommendation",
	"viewProduct":         "View product",
	"suggestedOccasion":   "Suggested occasion:",
	"errorScentSelection": "Please select at least one scent family.",
	"recommendationError": "We could not find a recommendation. Please try again.",
	"unexpectedError":     "Something unexpected happened. Please try again.",

	"occasion_eveningGala":         "Evening Gala",
	"occasion_casualDaytime":       "Casual Daytime",
	"occasion_intimateDinner":      "Intimate Dinner",
	"occasion_professionalSetting": "Professional Setting",
	"occasion_relaxingAtHome":      "Relaxing at Home",

	"mood_confidentPowerful":     "Confident & Powerful",
	"mood_romanticSophisticated": "Romantic & Sophisticated",
	"mood_vibrantEnergetic":      "Vibrant & Energetic",
	"mood_warmCozy":              "Warm & Cozy",
	"mood_mysteriousAlluring":    "Mysterious & Alluring",

	"oudWorldTitle":          "The World of Oud",
	"oudWorldMessage":        "Stories from the forests, distilleries and souks behind every bottle. Coming soon.",
	"myAccountTitle":         "My Account",
	"myAccountMessage":       "Account management is on its way.",
	"customGiftsTitle":       "Custom Gifts",
	"customGiftsMessage":     "Bespoke gift boxes, engraved and hand-wrapped. Coming soon.",
	"limitedEditionsTitle":   "Limited Editions",
	"limitedEditionsMessage": "Small-batch distillations released a few times a year.",
	"originsTitle":           "Origins",
	"originsMessage":         "From Assam to Cambodia, learn where our agarwood comes from.",
	"usageTipsTitle":         "Usage Tips",
	"usageTipsMessage":       "How to wear oils, layer perfumes and burn bakhoor.",
	"blogTitle":              "Journal",
	"blogMessage":            "Essays and notes from our perfumers.",
	"loginTitle":             "Sign In",
	"loginMessage":           "Sign-in is not available yet.",
	"orderHistoryTitle":      "Order History",
	"orderHistoryMessage":    "Your past orders will appear here.",
	"wishlistTitle":          "Wishlist",
	"wishlistMessage":        "Save your favourite scents for later. Coming soon.",
	"aboutTitle":             "About Us",
	"aboutMessage":           "A family house of oud, three generations deep.",
	"faqTitle":               "FAQ",
	"faqMessage":             "Answers to common questions about our products.",
	"shippingTitle":          "Shipping",
	"shippingMessage":        "Complimentary shipping on every order.",
	"privacyTitle":           "Privacy Policy",
	"privacyMessage":         "We never sell your personal data.",
	"termsTitle":             "Terms of Service",
	"termsMessage":           "The fine print, in plain language.",
	"contactTitle":           "Contact",
	"contactMessage":         "Write to us any time at care@houseofoud.example.",
}

var arabic = map[string]string{
	"appTitle":     "دار العود",
	"tagline":      "عود نادر وعطور وبخور",
	"navHome":      "الرئيسية",
	"navCart":      "السلة",
	"navConcierge": "مستشار العطور",
	"navLanguage":  "English",
	"categories":   "المجموعات",
	"featured":     "مختارات",
	"discover":     "اكتشف",
	"noProducts":   "لا توجد منتجات في هذه المجموعة بعد.",

	"category_pure_oud":       "عود خالص",
	"category_perfume":        "عطور",
	"category_bakhoor":        "بخور",
	"category_powder":         "مساحيق",
	"category_gift_set":       "أطقم هدايا",
	"category_accessory":      "إكسسوارات",
	"category_premium":        "فاخر",
	"category_perfume_oil":    "دهن عطري",
	"category_mist":           "معطرات رذاذ",
	"category_burner":         "مباخر",
	"category_home_accessory": "إكسسوارات المنزل",

	"backToCollection": "العودة إلى المجموعة",
	"backToHome":       "العودة إلى الرئيسية",
	"addToCart":        "أضف إلى السلة",
	"scentProfile":     "الطابع العطري",
	"quantity":         "الكمية",

	"shoppingCart":      "سلة التسوق",
	"cartEmpty":         "سلتك فارغة.",
	"continueShopping":  "متابعة التسوق",
	"orderSummary":      "ملخص الطلب",
	"subtotal":          "المجموع الفرعي",
	"shipping":          "الشحن",
	"free":              "مجاني",
	"total":             "الإجمالي",
	"proceedToCheckout": "إتمام الشراء",
	"remove":            "إزالة",

	"aiScentConcierge":    "مستشار العطور الذكي",
	"conciergeSubtitle":   "أخبرنا عن المناسبة وسنجد لك العود المناسب.",
	"whatsTheOccasion":    "ما هي المناسبة؟",
	"whatMood":            "ما المزاج الذي تبحث عنه؟",
	"whichScentFamilies":  "ما العائلات العطرية التي تحبها؟",
	"findMyScent":         "اعثر على عطري",
	"analyzing":           "جارٍ التحليل...",
	"yourRecommendation":  "توصيتك",
	"viewProduct":         "عرض المنتج",
	"suggestedOccasion":   "المناسبة المقترحة:",
	"errorScentSelection": "يرجى اختيار عائلة عطرية واحدة على الأقل.",
	"recommendationError": "تعذر العثور على توصية. يرجى المحاولة مرة أخرى.",
	"unexpectedError":     "حدث خطأ غير متوقع. يرجى المحاولة مرة أخرى.",

	"occasion_eveningGala":         "حفل مسائي",
	"occasion_casualDaytime":       "نهار غير رسمي",
	"occasion_intimateDinner":      "عشاء خاص",
	"occasion_professionalSetting": "بيئة عمل",
	"occasion_relaxingAtHome":      "استرخاء في المنزل",

	"mood_confidentPowerful":     "واثق وقوي",
	"mood_romanticSophisticated": "رومانسي وراقٍ",
	"mood_vibrantEnergetic":      "حيوي ونشيط",
	"mood_warmCozy":              "دافئ ومريح",
	"mood_mysteriousAlluring":    "غامض وجذاب",

	"oudWorldTitle":          "عالم العود",
	"oudWorldMessage":        "حكايات الغابات والمقطرات والأسواق خلف كل زجاجة. قريبًا.",
	"myAccountTitle":         "حسابي",
	"myAccountMessage":       "إدارة الحساب قادمة قريبًا.",
	"customGiftsTitle":       "هدايا مخصصة",
	"customGiftsMessage":     "صناديق هدايا محفورة ومغلفة يدويًا. قريبًا.",
	"limitedEditionsTitle":   "إصدارات محدودة",
	"limitedEditionsMessage": "تقطيرات صغيرة تصدر بضع مرات في السنة.",
	"originsTitle":           "المنشأ",
	"originsMessage":         "من آسام إلى كمبوديا، تعرّف على مصادر عودنا.",
	"usageTipsTitle":         "نصائح الاستخدام",
	"usageTipsMessage":       "كيف تضع الدهن وتمزج العطور وتبخّر البخور.",
	"blogTitle":              "المدونة",
	"blogMessage":            "مقالات وملاحظات من صانعي عطورنا.",
	"loginTitle":             "تسجيل الدخول",
	"loginMessage":           "تسجيل الدخول غير متاح بعد.",
	"orderHistoryTitle":      "سجل الطلبات",
	"orderHistoryMessage":    "ستظهر طلباتك السابقة هنا.",
	"wishlistTitle":          "قائمة الأمنيات",
	"wishlistMessage":        "احفظ عطورك المفضلة لوقت لاحق. قريبًا.",
	"aboutTitle":             "من نحن",
	"aboutMessage":           "دار عائلية للعود منذ ثلاثة أجيال.",
	"faqTitle":               "الأسئلة الشائعة",
	"faqMessage":             "إجابات عن الأسئلة الشائعة حول منتجاتنا.",
	"shippingTitle":          "الشحن",
	"shippingMessage":        "شحن مجاني لكل الطلبات.",
	"privacyTitle":           "سياسة الخصوصية",
	"privacyMessage":         "لا نبيع بياناتك الشخصية أبدًا.",
	"termsTitle":             "شروط الخدمة",
	"termsMessage":           "الشروط بلغة واضحة.",
	"contactTitle":           "اتصل بنا",
	"contactMessage":         "راسلنا في أي وقت على care@houseofoud.example.",
}
