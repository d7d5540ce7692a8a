package texture

import (
	"image"

	"github.com/go-gl/gl/v4.1-core/gl"
	"go.uber.org/zap"

	"github.com/Faultbox/robowalk/internal/logger"
)

// Upload2D creates a mipmapped, repeating 2D texture from img.
func Upload2D(img *image.RGBA) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_2D, tex)

	w, h := int32(img.Rect.Dx()), int32(img.Rect.Dy())
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, w, h, 0, gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(img.Pix))
	gl.GenerateMipmap(gl.TEXTURE_2D)

	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.REPEAT)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR_MIPMAP_LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)

	gl.BindTexture(gl.TEXTURE_2D, 0)
	return tex
}

// White creates a 1x1 white texture used when a material has no map.
func White() uint32 {
	img := image.NewRGBA(image.Rect(0, 0, 1, 1))
	copy(img.Pix, []byte{255, 255, 255, 255})
	return Upload2D(img)
}

// UploadCubemap creates a cube map texture from faces. Faces that failed
// to load are logged and left unset, so they sample as black.
func UploadCubemap(faces *CubeFaces) uint32 {
	var tex uint32
	gl.GenTextures(1, &tex)
	gl.BindTexture(gl.TEXTURE_CUBE_MAP, tex)

	for i, face := range faces.Faces {
		if face == nil {
			logger.Warn("cubemap texture failed to load",
				zap.String("path", faces.Paths[i]),
				zap.Error(faces.Errs[i]))
			continue
		}
		w, h := int32(face.Rect.Dx()), int32(face.Rect.Dy())
		gl.TexImage2D(gl.TEXTURE_CUBE_MAP_POSITIVE_X+uint32(i), 0, gl.RGBA, w, h, 0,
			gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(face.Pix))
	}

	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_CUBE_MAP, gl.TEXTURE_WRAP_R, gl.CLAMP_TO_EDGE)

	gl.BindTexture(gl.TEXTURE_CUBE_MAP, 0)
	logger.Debug("cubemap uploaded", zap.Int("faces", faces.Loaded()))
	return tex
}

// Delete releases a texture.
func Delete(tex uint32) {
	if tex != 0 {
		gl.DeleteTextures(1, &tex)
	}
}
