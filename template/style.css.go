package template

const StyleCSS = `
body {
  margin: 0 auto;
  padding: 20px;
  box-sizing: border-box;
  line-height: 1.6;
  text-align: justify;
  color: #333333;
}

h1 {
  text-align: center;
  font-size: 1.5em;
  margin: 2em auto;
  font-weight: bold;
  color: #2c3e50;
}

p {
  margin: 0.8em 0;
  text-indent: 2em;
}
`
