package matching

const (
	// DefaultOrderBookLimit specifies the default number of price levels per
	// side hosts display to callers that do not request an explicit limit.
	DefaultOrderBookLimit = 20

	// defaultReservedSubscriberSlots specifies initial size of the hashmap
	// array storing engine subscribers by subscription id.
	defaultReservedSubscriberSlots = 16
)
