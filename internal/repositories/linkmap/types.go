package linkmap

type LinkInput struct {
	GuildID  string
	Handle   string
	MemberID string
}

type ResolveInput struct {
	GuildID string
	Handle  string
}

type ResolveOutput struct {
	MemberID string
}
