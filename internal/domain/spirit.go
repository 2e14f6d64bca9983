package domain

// Spirit is one of the seven scripted debaters. The roster is static
// display data, there is no engine behind it.
type Spirit struct {
	Name     string `json:"name"`
	Nickname string `json:"nickname"`
	Icon     string `json:"icon"`
	Side     string `json:"side"`
}

func Spirits() []Spirit {
	return []Spirit{
		{Name: "晨星", Nickname: "數據控", Icon: "⭐", Side: SidePro},
		{Name: "心語", Nickname: "暖心姊", Icon: "💖", Side: SidePro},
		{Name: "智慧", Nickname: "老司機", Icon: "🧠", Side: SidePro},
		{Name: "月影", Nickname: "毒舌精", Icon: "🌙", Side: SideCon},
		{Name: "柔光", Nickname: "和事佬", Icon: "🕊️", Side: SideCon},
		{Name: "真言", Nickname: "嗆辣妹", Icon: "⚡", Side: SideCon},
		{Name: "天平", Nickname: "正義魔人", Icon: "⚖️", Side: SideJudge},
	}
}
