package content

import "time"

// DataVersion is the current schema version marker. Bumping it forces the
// repair routine to rewrite the visual identity of every built-in channel on
// the next load.
const DataVersion = "3.0"

// BuiltinChannels returns the seed channel set in its canonical order.
// The repair routine treats these ids as permanent: a deleted built-in
// reappears on the next version bump.
func BuiltinChannels(now time.Time) []Channel {
	ts := now.UnixMilli()
	return []Channel{
		{
			ID:          "5",
			Title:       "Academy STC",
			Description: "تطوير المهارات الرقمية",
			Color:       "#4F008C",
			LastUpdated: ts,
			LogoURL:     "https://upload.wikimedia.org/wikipedia/commons/thumb/b/bf/STC_Logo.svg/1024px-STC_Logo.svg.png",
			LogoConfig:  LogoConfig{Scale: 0.8},
			Activities:  []Activity{},
		},
		{
			ID:          "4",
			Title:       "jahez | جاهز",
			Description: "خدمات التوصيل - أسرع مما تتخيل",
			Color:       "#C62828",
			LastUpdated: ts,
			LogoURL:     "https://pbs.twimg.com/profile_images/1454728560249298946/N0yyZfK__400x400.jpg",
			LogoConfig:  LogoConfig{Scale: 1.1},
			Activities:  []Activity{},
		},
		{
			ID:          "3",
			Title:       "سلامة المرضى | التوعية الصحية",
			Description: "المركز السعودي لسلامة المرضى",
			Color:       "#42A5F5",
			LastUpdated: ts,
			LogoURL:     "https://upload.wikimedia.org/wikipedia/commons/thumb/9/90/Ministry_of_Health_%28Saudi_Arabia%29_Logo.svg/1200px-Ministry_of_Health_%28Saudi_Arabia%29_Logo.svg.png",
			LogoConfig:  LogoConfig{Scale: 0.8},
			Activities:  []Activity{},
		},
		{
			ID:          "2",
			Title:       "الجامعة الإلكترونية السعودية",
			Description: "مستقبل التعليم الرقمي",
			Color:       "#1565C0",
			LastUpdated: ts,
			LogoURL:     "https://upload.wikimedia.org/wikipedia/ar/7/73/Saudi_Electronic_University_logo.png",
			LogoConfig:  LogoConfig{Scale: 0.9},
			Activities:  []Activity{},
		},
		{
			ID:          "1",
			Title:       "بوابة الدرعية | تاريخنا والجذور",
			Description: "يوم التأسيس - تراثنا فخرنا",
			Color:       "#3E2723",
			LastUpdated: ts,
			LogoURL:     "https://cdn-icons-png.flaticon.com/512/3003/3003733.png",
			LogoConfig:  LogoConfig{Scale: 0.8},
			Activities: []Activity{
				{
					ID:       "dg_activity_1",
					Type:     TypeMCQ,
					Category: CategoryInteractive,
					Title:    "تحدي التاريخ السعودي",
					Settings: Settings{Timer: 60, SoundEffect: SoundSuspense},
					Content: &Content{Questions: []Question{
						{
							ID:                 "q1",
							QuestionText:       "في أي عام تأسست الدولة السعودية الأولى؟",
							Options:            []string{"1727م", "1932م", "1902م", "1818م"},
							CorrectOptionIndex: 0,
							Timer:              30,
						},
					}},
				},
			},
		},
		{
			ID:          "10",
			Title:       "أكاديمية طويق",
			Description: "تعلم البرمجة والتقنيات",
			Color:       "#311B92",
			LastUpdated: ts,
			LogoURL:     "https://tuwaiq.edu.sa/img/logo/logo.svg",
			LogoConfig:  LogoConfig{Scale: 0.9},
			Activities:  []Activity{},
		},
		{
			ID:          "9",
			Title:       "الأول SAB",
			Description: "شريكك المصرفي",
			Color:       "#B71C1C",
			LastUpdated: ts,
			LogoURL:     "https://upload.wikimedia.org/wikipedia/en/thumb/8/86/SABB_Bank_Logo.svg/1200px-SABB_Bank_Logo.svg.png",
			LogoConfig:  LogoConfig{Scale: 1},
			Activities:  []Activity{},
		},
		{
			ID:          "8",
			Title:       "أرامكو aramco",
			Description: "الطاقة والريادة",
			Color:       "#558B2F",
			LastUpdated: ts,
			LogoURL:     "https://upload.wikimedia.org/wikipedia/commons/thumb/4/4e/Saudi_Aramco_Logo.svg/1200px-Saudi_Aramco_Logo.svg.png",
			LogoConfig:  LogoConfig{Scale: 0.8},
			Activities:  []Activity{},
		},
		{
			ID:          "6",
			Title:       "مدارس ابن رشد",
			Description: "جيل يبني المستقبل",
			Color:       "#263238",
			LastUpdated: ts,
			LogoURL:     "https://ibnroshd.edu.sa/wp-content/uploads/2021/08/logo.png",
			LogoConfig:  LogoConfig{Scale: 1},
			Activities:  []Activity{},
		},
		{
			ID:          "7",
			Title:       "بلبل العربية",
			Description: "تطبيق تعليم اللغة العربية",
			Color:       "#5D4037",
			LastUpdated: ts,
			LogoURL:     "https://cdn-icons-png.flaticon.com/512/3204/3204868.png",
			LogoConfig:  LogoConfig{Scale: 1},
			Activities:  []Activity{},
		},
	}
}
