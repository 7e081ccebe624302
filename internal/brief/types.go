package brief

// #region farewell-config

// FarewellConfig holds the tokens that end a session and the fixed reply.
type FarewellConfig struct {
	Tokens []string
	Reply  string
}

// DefaultFarewellConfig returns the built-in farewell handling.
func DefaultFarewellConfig() FarewellConfig {
	return FarewellConfig{
		Tokens: []string{"再见", "拜拜", "回头见", "bye", "Bye", "goodbye"},
		Reply:  "再见！(Zàijiàn!) 记得查看反馈并下载你的学习证明（学习总结/徽章）。",
	}
}

// #endregion farewell-config
