package ports

type Topic = string
type Event = []string
type EventBus interface {
	Shutdown()
	Pub(Topic, Event)
	Sub(Topic) chan Event
	Unsub(chan Event)
}

const (
	TopicArtifactStored    Topic = "artifact-stored"
	TopicArtifactRemoved   Topic = "artifact-removed"
	TopicCacheUpdated      Topic = "cache-updated"
	TopicCacheFileModified Topic = "cache-file-modified"
	TopicCacheFileRemoved  Topic = "cache-file-removed"
)
