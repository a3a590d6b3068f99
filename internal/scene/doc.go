// Package scene owns the splash particle sphere: sampling, rotation, camera
// and viewport.
//
//   - [Sample]: uniform points on a sphere surface
//   - [Controller]: Initialize/Tick/Resize/Start/Stop/Dispose lifecycle
//   - [ResizeAdapter]: maps terminal or window sizes to viewport updates
//
// # Example
//
//	c := scene.New(rand.New(rand.NewSource(seed)))
//	if err := c.Initialize(splash, scene.Viewport{Width: 160, Height: 96}); err != nil {
//		return err
//	}
//	c.Start(loop)
package scene
