package bot

import (
	"github.com/line/line-bot-sdk-go/v7/linebot"
)

func (b *Bot) replyStartDebate(replyToken string, userID string) error {
	token, err := b.tokens.NewDebateToken(userID)
	if err != nil {
		return err
	}

	debateURL := b.debateURL + "#" + token

	template := linebot.NewButtonsTemplate(
		"",
		"🎭 智能辯論所",
		"歡迎來到語氣靈智慧辯論殿堂！\n✨ 六位語氣靈等待與您分享智慧\n💎 每日熱門話題深度對談",
		linebot.NewURIAction("🌟 開始觀看辯論", debateURL),
		linebot.NewMessageAction("📋 使用說明", "help"),
	)

	message := linebot.NewTemplateMessage("智能辯論所 - 開始辯論", template)

	_, err = b.client.ReplyMessage(replyToken, message).Do()

	return err
}

func (b *Bot) replyHelp(replyToken string) error {
	message := linebot.NewTextMessage(`🎭 智能辯論所使用說明

📖 功能介紹：
• 每日10個熱門辯論主題
• 六位語氣靈智慧對談
• 三輪深度思辨交流
• 天平裁判公正點評

📱 語氣靈團隊：
🌟 正方：晨星⭐、心語💖、智慧🧠
🌙 反方：月影🌙、柔光🕊️、真言⚡
⚖️ 裁判：天平⚖️

🎯 使用方式：
1. 點擊「開始辯論」進入頁面
2. 選擇感興趣的辯論主題
3. 觀看語氣靈精彩對話
4. 獲取Email辯論成果

⏰ 使用限制：
• 每日限觀看3場辯論
• 每場辯論約5-8分鐘

💡 小提示：
輸入「開始」或「辯論」可快速開始！`)

	_, err := b.client.ReplyMessage(replyToken, message).Do()

	return err
}

func (b *Bot) replyDefault(replyToken string) error {
	message := linebot.NewTextMessage(`👋 歡迎來到智能辯論所！

🎭 這裡有六位語氣靈等待與您分享智慧：
• 晨星 ⭐ - 理性分析專家
• 心語 💖 - 感性共情大師
• 智慧 🧠 - 哲思洞察者
• 月影 🌙 - 批判思辨家
• 柔光 🕊️ - 平衡調和師
• 真言 ⚡ - 直覺透視者

輸入「開始」開啟智慧辯論之旅！
輸入「help」查看詳細說明。`)

	_, err := b.client.ReplyMessage(replyToken, message).Do()

	return err
}
