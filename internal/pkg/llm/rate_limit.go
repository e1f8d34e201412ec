package llm

import (
	"golang.org/x/sync/semaphore"
)

// chatWeight bounds concurrent generation calls against the deployment.
const chatWeight = int64(5)

func newChatSem() *semaphore.Weighted {
	return semaphore.NewWeighted(chatWeight)
}
