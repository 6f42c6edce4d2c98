package catalog

import "cybertcm/internal/domain"

// Embedded fallback data, used when the workbook sources are unavailable.

func defaultEightfoldQuestions() []domain.QuestionItem {
	texts := []struct {
		text string
		dim  string
	}{
		{"1. 你是否比周围的人更容易觉得冷？", domain.DimCold},
		{"2. 吃凉的东西肚子会不舒服吗？", domain.DimCold},
		{"3. 阴冷天气关节会痛吗？", domain.DimCold},
		{"4. 容易面红耳赤或长痘吗？", domain.DimHeat},
		{"5. 经常口干舌燥想喝冰水？", domain.DimHeat},
		{"6. 容易心烦意乱？", domain.DimHeat},
		{"7. 容易疲劳不想说话？", domain.DimVoid},
		{"8. 容易感冒？", domain.DimVoid},
		{"9. 容易出虚汗？", domain.DimVoid},
		{"10. 蹲下起立眼黑？", domain.DimVoid},
		{"11. 肚子胀气或便秘？", domain.DimSolid},
		{"12. 声音洪亮中气足？", domain.DimSolid},
		{"13. 食欲旺盛容易积食？", domain.DimSolid},
		{"14. 皮肤嘴唇常年干燥？", domain.DimDry},
		{"15. 干咳无痰？", domain.DimDry},
		{"16. 皮肤干痒？", domain.DimDry},
		{"17. 脸上出油头发油？", domain.DimWet},
		{"18. 身体沉重睡不醒？", domain.DimWet},
		{"19. 大便粘马桶？", domain.DimWet},
		{"20. 嘴里有异味？", domain.DimWet},
		{"21. 情绪低落爱叹气？", domain.DimQi},
		{"22. 胸闷肋痛？", domain.DimQi},
		{"23. 喉咙有异物感？", domain.DimQi},
		{"24. 乳房或小腹胀痛？", domain.DimQi},
		{"25. 身上容易有淤青？", domain.DimBlood},
		{"26. 脸色暗沉嘴唇紫？", domain.DimBlood},
		{"27. 皮肤粗糙有甲错？", domain.DimBlood},
		{"28. 健忘？", domain.DimBlood},
	}
	items := make([]domain.QuestionItem, len(texts))
	for i, t := range texts {
		items[i] = domain.QuestionItem{ID: i + 1, Text: t.text, Dimension: t.dim, Weight: 1}
	}
	return items
}

func defaultTypeProfiles() []domain.TypeProfile {
	return []domain.TypeProfile{
		{
			Code:           "CVDQ",
			Name:           "听风者",
			Slogan:         "听不到才听得见",
			Description:    "世界太吵你只是关小了音量",
			FactorySetting: "低功耗模式屏蔽干扰",
			BugWarning:     "容易emo|社交电量低",
			Teammate:       "HSDQ",
			Keep:           "晒背",
			Stop:           "熬夜",
			Start:          "喝热水",
		},
		{
			Code:           domain.TypeCodeBalanced,
			Name:           "天选之子",
			Slogan:         "阴阳平和",
			Description:    "六边形战士",
			FactorySetting: "你的身体是完美的平衡态",
			BugWarning:     "太完美遭人嫉妒",
			Teammate:       "None",
			Keep:           "保持现状",
			Stop:           "瞎折腾",
			Start:          "继续优秀",
		},
	}
}

func defaultNinefoldQuestions() []domain.QuestionItem {
	texts := []struct {
		text string
		dim  string
	}{
		{"1. 您精力充沛吗？", domain.ConstPingHe},
		{"2. 您容易疲乏吗？", domain.ConstQiXu},
		{"3. 您容易气短，呼吸短促接不上气吗？", domain.ConstQiXu},
		{"4. 您说话声音低弱无力吗？", domain.ConstQiXu},
		{"5. 您感到精神紧张、焦虑不安吗？", domain.ConstQiYu},
		{"6. 您感到闷闷不乐、情绪低沉吗？", domain.ConstQiYu},
		{"7. 您多愁善感、感情脆弱吗？", domain.ConstQiYu},
		{"8. 您容易感到害怕或受到惊吓吗？", domain.ConstQiYu},
		{"9. 您感到胸闷或腹部胀满吗？", domain.ConstTanShi},
		{"10. 您感到手脚心发热吗？", domain.ConstYinXu},
		{"11. 您手脚发凉吗？", domain.ConstYangXu},
		{"12. 您胃脘部、背部或腰膝部怕冷吗？", domain.ConstYangXu},
		{"13. 您感到怕冷、衣服比别人穿得多吗？", domain.ConstYangXu},
		{"14. 您比一般人更容易患感冒吗？", domain.ConstQiXu},
		{"15. 您没有感冒时也会打喷嚏吗？", domain.ConstTeBing},
		{"16. 您感到身体沉重不轻松或不爽快吗？", domain.ConstTanShi},
		{"17. 您没有感冒时也会鼻塞、流鼻涕吗？", domain.ConstTeBing},
		{"18. 您有因季节变化、温度变化或异味等原因而咳喘的现象吗？", domain.ConstTeBing},
		{"19. 您的皮肤在不知不觉中会出现青紫瘀斑吗？", domain.ConstXueYu},
		{"20. 您的皮肤容易起荨麻疹吗？", domain.ConstTeBing},
		{"21. 您感觉身体、脸上发热吗？", domain.ConstYinXu},
		{"22. 您两颧部有细微红丝吗？", domain.ConstXueYu},
		{"23. 您面部或鼻部有油腻感或者油亮发光吗？", domain.ConstShiRe},
		{"24. 您面色晦暗或容易出现褐斑吗？", domain.ConstXueYu},
		{"25. 您容易生痤疮或疮疖吗？", domain.ConstShiRe},
		{"26. 您感到皮肤或口唇干吗？", domain.ConstYinXu},
		{"27. 您感到口苦或嘴里有异味吗？", domain.ConstShiRe},
		{"28. 您腹部肥满松软吗？", domain.ConstTanShi},
		{"29. 您吃凉的东西会感到不舒服或者怕吃凉东西吗？", domain.ConstYangXu},
		{"30. 您大便黏滞不爽、有解不尽的感觉吗？", domain.ConstShiRe},
		{"31. 您感到眼睛干涩吗？", domain.ConstYinXu},
		{"32. 您嘴里有黏黏的感觉吗？", domain.ConstTanShi},
		{"33. 您口唇的颜色偏暗吗？", domain.ConstXueYu},
	}
	items := make([]domain.QuestionItem, len(texts))
	for i, t := range texts {
		items[i] = domain.QuestionItem{ID: i + 1, Text: t.text, Dimension: t.dim, Weight: 1}
	}
	return items
}

// DefaultBundle returns the embedded fallback catalogs for both instruments.
func DefaultBundle() *Bundle {
	return &Bundle{
		Eightfold: NewEightfold(defaultEightfoldQuestions(), defaultTypeProfiles()),
		Ninefold:  Ninefold{Questions: defaultNinefoldQuestions()},
	}
}
