package i18n

// 支持的语言
const (
	LangEN = "en"
	LangZH = "zh"
)

// translations 界面文案翻译表
var translations = map[string]map[string]string{
	LangEN: {
		"title":               "FDA 510(k) Agentic Review",
		"subtitle":            "Intelligent Document Analysis & Compliance Verification",
		"dashboard":           "Dashboard",
		"agents":              "Agents Library",
		"review":              "Document Review",
		"language":            "Language",
		"create_agent":        "Create Custom Agent",
		"active_sessions":     "Active Sessions",
		"ocr_confidence":      "OCR Confidence",
		"agents_running":      "Total Agents",
		"avg_review_time":     "Avg Review Time",
		"recent_activity":     "Recent Activity",
		"agent_library":       "Agent Library",
		"document_viewer":     "Document Viewer",
		"checklist":           "Compliance Checklist",
		"generate_mock":       "Generate Mock Submission",
		"select_agent":        "Select an Agent to activate",
		"run_analysis":        "Analyze with",
		"ai_provider":         "AI Provider",
		"api_config":          "API Configuration",
		"api_key_required":    "API Key Required",
		"gemini_api_prompt":   "Enter your Gemini API Key:",
		"xai_api_prompt":      "Enter your xAI API Key:",
		"api_success":         "API Key configured!",
		"agents_load_error":   "Error loading agents from agents.yaml.",
		"custom_agent_builder": "Custom Agent Builder",
	},
	LangZH: {
		"title":               "FDA 510(k) 智能審查系統",
		"subtitle":            "智能文件分析與合規驗證",
		"dashboard":           "儀表板",
		"agents":              "代理庫",
		"review":              "文件審查",
		"language":            "語言",
		"create_agent":        "創建自定義代理",
		"active_sessions":     "活躍會話",
		"ocr_confidence":      "OCR 信心度",
		"agents_running":      "代理總數",
		"avg_review_time":     "平均審查時間",
		"recent_activity":     "最近活動",
		"agent_library":       "代理庫",
		"document_viewer":     "文件查看器",
		"checklist":           "合規清單",
		"generate_mock":       "生成模擬提交",
		"select_agent":        "請選擇一個代理以激活",
		"run_analysis":        "使用代理分析",
		"ai_provider":         "AI 提供商",
		"api_config":          "API 配置",
		"api_key_required":    "需要 API 金鑰",
		"gemini_api_prompt":   "請輸入您的 Gemini API 金鑰:",
		"xai_api_prompt":      "請輸入您的 xAI API 金鑰:",
		"api_success":         "API 金鑰已成功配置！",
		"agents_load_error":   "從 agents.yaml 加載代理時出錯。",
		"custom_agent_builder": "自定義代理生成器",
	},
}

// T 按语言取文案，语言缺失时回退英文，key 缺失时原样返回
func T(lang, key string) string {
	table, ok := translations[lang]
	if !ok {
		table = translations[LangEN]
	}
	if value, ok := table[key]; ok {
		return value
	}
	if value, ok := translations[LangEN][key]; ok {
		return value
	}
	return key
}

// IsSupported 检查语言是否受支持
func IsSupported(lang string) bool {
	_, ok := translations[lang]
	return ok
}
