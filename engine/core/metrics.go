package core

const AVG_COUNT uint8 = 30

// FrameMetrics keeps a rolling frame time average and a frames per second count.
type FrameMetrics struct {
	frameAVGCounter    uint8
	msTimes            [AVG_COUNT]float64
	msAVG              float64
	frames             int32
	accumulatedFrameMS float64
	fps                float64
}

func NewFrameMetrics() *FrameMetrics {
	return &FrameMetrics{}
}

func (fm *FrameMetrics) Update(frameElapsedTime float64) {
	// Calculate frame ms average
	frameMS := frameElapsedTime * 1000.0
	fm.msTimes[fm.frameAVGCounter] = frameMS
	if fm.frameAVGCounter == AVG_COUNT-1 {
		fm.msAVG = 0
		for i := uint8(0); i < AVG_COUNT; i++ {
			fm.msAVG += fm.msTimes[i]
		}
		fm.msAVG /= float64(AVG_COUNT)
	}
	fm.frameAVGCounter++
	fm.frameAVGCounter %= AVG_COUNT

	// Calculate frames per second.
	fm.accumulatedFrameMS += frameMS
	if fm.accumulatedFrameMS > 1000 {
		fm.fps = float64(fm.frames)
		fm.accumulatedFrameMS -= 1000
		fm.frames = 0
	}

	// Count all frames.
	fm.frames++
}

func (fm *FrameMetrics) Frame() (float64, float64) {
	return fm.fps, fm.msAVG
}
