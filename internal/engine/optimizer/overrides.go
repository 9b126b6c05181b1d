package optimizer

import "go.trai.ch/sharetree/internal/core/domain"

// applyOverrides unions the forced and override exports of every share key into each
// runtime the collector observed. Runtimes that were never observed get nothing.
func (o *Optimizer) applyOverrides(session *domain.Session) {
	if len(session.Runtimes) == 0 {
		return
	}

	runtimeKeys := session.RuntimeKeys()
	for _, shareKey := range o.shareKeys {
		forced := o.shared[shareKey].UsedExports
		override := o.overrides.Lookup(shareKey)
		if len(forced) == 0 && len(override) == 0 {
			continue
		}

		for _, runtimeKey := range runtimeKeys {
			if _, ignored := o.ignored[runtimeKey]; ignored {
				continue
			}
			bucket := session.Table.Bucket(shareKey, session.Runtimes[runtimeKey])
			for _, name := range forced {
				bucket[name] = struct{}{}
			}
			for _, name := range override {
				bucket[name] = struct{}{}
			}
		}
	}
}
