package bots

// Registry is a read-mostly lookup of managed bots. GetBot returns
// errors.ErrBotNotFound for unknown names; the dispatcher depends only on
// that lookup, the remaining operations exist for bootstrap and admin use.
type Registry interface {
	GetBot(name string) (*Bot, error)
	List() ([]*Bot, error)
	Upsert(bot *Bot) error
	Delete(name string) error
}
