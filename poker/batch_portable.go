//go:build !((amd64 || arm64) && !purego)

package poker

// PlatformBatch names the batch path compiled into this build.
const PlatformBatch = "portable"

func newPlatformBatch(t *RankTables) BatchEvaluator {
	return NewPortableBatch(t)
}
