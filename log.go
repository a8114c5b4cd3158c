package rtree

import "github.com/sirupsen/logrus"

// Log receives debug records for structural changes to trees: splits, root
// growth, underflow handling and root collapse. It logs at Info level by
// default, so nothing is emitted unless the level is lowered.
var Log = logrus.New()

func debugEnabled() bool {
	return Log.IsLevelEnabled(logrus.DebugLevel)
}
